package pipes

import "github.com/sirkon/ulib/internal/logging"

// Option определение опции таблицы дескрипторов.
type Option func(t *Table, _ optRestriction)

type optRestriction struct{}

// WithCapacity максимальное число открытых дескрипторов.
func WithCapacity(capacity int) Option {
	return func(t *Table, _ optRestriction) {
		if capacity > 0 {
			t.capacity = capacity
		}
	}
}

// WithPipeSize размер буфера создаваемых каналов.
func WithPipeSize(size int) Option {
	return func(t *Table, _ optRestriction) {
		if size > 0 {
			t.pipeSize = size
		}
	}
}

// WithLogger логгер событий таблицы.
func WithLogger(log logging.Logger) Option {
	return func(t *Table, _ optRestriction) {
		t.log = log
	}
}
