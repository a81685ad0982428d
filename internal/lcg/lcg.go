package lcg

import "sync"

const (
	multiplier = 1103515245
	increment  = 12345

	// DefaultState начальное состояние генератора без явного зерна.
	DefaultState = 1

	// Max максимальное значение выдаваемое генератором, RAND_MAX.
	Max = 32767
)

// Source линейный конгруэнтный генератор с явным состоянием.
// Переполнение при вычислении следующего состояния является частью
// алгоритма: все вычисления ведутся по модулю 2⁶⁴.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе,
//          для разделяемого использования есть Locked.
type Source struct {
	state uint64
}

// New конструктор генератора с состоянием DefaultState.
func New() *Source {
	return &Source{state: DefaultState}
}

// NewSeeded конструктор генератора с данным начальным состоянием.
func NewSeeded(seed uint64) *Source {
	return &Source{state: seed}
}

// Next очередное значение из диапазона [0, Max].
func (s *Source) Next() int {
	s.state = s.state*multiplier + increment
	return int((s.state / 65536) % (Max + 1))
}

// Seed замена состояния генератора, аналог srand.
func (s *Source) Seed(seed uint64) {
	s.state = seed
}

// State текущее состояние генератора.
func (s *Source) State() uint64 {
	return s.state
}

// NewLocked конструктор генератора для разделяемого использования.
func NewLocked(src *Source) *Locked {
	return &Locked{src: src}
}

// Locked генератор с защитой состояния мьютексом.
type Locked struct {
	lock sync.Mutex
	src  *Source
}

// Next то же самое, что и Source.Next.
func (l *Locked) Next() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.src.Next()
}

// Seed то же самое, что и Source.Seed.
func (l *Locked) Seed(seed uint64) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.src.Seed(seed)
}
