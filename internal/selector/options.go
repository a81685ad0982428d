package selector

import "github.com/sirkon/ulib/internal/logging"

// Option определение опции мультиплексора.
type Option func(s *Selector, _ optRestriction)

type optRestriction struct{}

// WithCapacity максимально допустимое значение nfds.
func WithCapacity(capacity int) Option {
	return func(s *Selector, _ optRestriction) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithLogger логгер событий ожидания.
func WithLogger(log logging.Logger) Option {
	return func(s *Selector, _ optRestriction) {
		s.log = log
	}
}
