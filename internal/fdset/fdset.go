package fdset

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/sirkon/errors"
)

const (
	// DefaultCapacity вместимость набора по-умолчанию, равна __FD_SETSIZE.
	DefaultCapacity = 1024

	// WordBits количество дескрипторов в одном машинном слове набора.
	WordBits = 64
)

// Set битовый набор дескрипторов фиксированной вместимости,
// аналог fd_set. Бит i установлен тогда и только тогда, когда
// дескриптор i входит в набор.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Set struct {
	words    []uint64
	capacity int
}

// New конструктор пустого набора данной вместимости.
func New(capacity int) (*Set, error) {
	if capacity <= 0 {
		return nil, errors.New("descriptor set capacity must be positive").Int("invalid-capacity", capacity)
	}

	return &Set{
		words:    make([]uint64, (capacity+WordBits-1)/WordBits),
		capacity: capacity,
	}, nil
}

// NewDefault конструктор пустого набора вместимостью DefaultCapacity.
func NewDefault() *Set {
	return &Set{
		words:    make([]uint64, DefaultCapacity/WordBits),
		capacity: DefaultCapacity,
	}
}

// Of конструктор набора вместимостью DefaultCapacity с данными дескрипторами.
func Of(fds ...int) (*Set, error) {
	s := NewDefault()
	for _, fd := range fds {
		if err := s.Add(fd); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Capacity возвращает вместимость набора.
func (s *Set) Capacity() int {
	return s.capacity
}

// Count возвращает количество дескрипторов в наборе.
func (s *Set) Count() int {
	var res int
	for _, w := range s.words {
		res += bits.OnesCount64(w)
	}

	return res
}

// Empty проверка того, что набор пуст.
func (s *Set) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clone копия набора.
func (s *Set) Clone() *Set {
	res := &Set{
		words:    make([]uint64, len(s.words)),
		capacity: s.capacity,
	}
	copy(res.words, s.words)

	return res
}

// Each обход дескрипторов набора по возрастанию. Обход прекращается,
// если f вернула false.
func (s *Set) Each(f func(fd int) bool) {
	for i, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			if !f(i*WordBits + bit) {
				return
			}
			w &^= 1 << uint(bit)
		}
	}
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Each(func(fd int) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(fd))
		return true
	})
	b.WriteByte('}')

	return b.String()
}
