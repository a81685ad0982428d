package fdset

import "github.com/sirkon/errors"

// ErrOutOfRange дескриптор вне диапазона [0, Capacity).
const ErrOutOfRange errors.Const = "descriptor is out of set range"

// ErrCapacityMismatch операция над наборами разной вместимости.
const ErrCapacityMismatch errors.Const = "descriptor sets capacities differ"

// Zero очистка набора, аналог FD_ZERO.
func (s *Set) Zero() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Clear то же самое, что и Zero.
func (s *Set) Clear() {
	s.Zero()
}

// Add добавление дескриптора в набор, аналог FD_SET.
func (s *Set) Add(fd int) error {
	if err := s.check(fd); err != nil {
		return err
	}

	s.words[fd/WordBits] |= mask(fd)
	return nil
}

// Remove удаление дескриптора из набора, аналог FD_CLR.
func (s *Set) Remove(fd int) error {
	if err := s.check(fd); err != nil {
		return err
	}

	s.words[fd/WordBits] &^= mask(fd)
	return nil
}

// Contains проверка вхождения дескриптора в набор, аналог FD_ISSET.
// Для дескрипторов вне диапазона всегда возвращается false.
func (s *Set) Contains(fd int) bool {
	if fd < 0 || fd >= s.capacity {
		return false
	}

	return s.words[fd/WordBits]&mask(fd) != 0
}

// Retain оставляет в наборе только те дескрипторы, что входят и в ready.
func (s *Set) Retain(ready *Set) error {
	if ready.capacity != s.capacity {
		return errors.Wrap(ErrCapacityMismatch, "retain ready descriptors").
			Int("set-capacity", s.capacity).
			Int("ready-capacity", ready.capacity)
	}

	for i := range s.words {
		s.words[i] &= ready.words[i]
	}

	return nil
}

func (s *Set) check(fd int) error {
	if fd < 0 || fd >= s.capacity {
		return errors.Wrap(ErrOutOfRange, "check descriptor").
			Int("fd", fd).
			Int("capacity", s.capacity)
	}

	return nil
}

func mask(fd int) uint64 {
	return uint64(1) << uint(fd%WordBits)
}
