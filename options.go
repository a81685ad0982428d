package ulib

import (
	"io"

	"github.com/sirkon/ulib/internal/logging"
	"github.com/sirkon/ulib/internal/sched"
)

// Option определение опции среды.
type Option func(s *System, _ optRestriction)

type optRestriction struct{}

// WithStdin источник стандартного ввода.
func WithStdin(r io.Reader) Option {
	return func(s *System, _ optRestriction) {
		s.stdin = r
	}
}

// WithStdout приёмник стандартного вывода.
func WithStdout(w io.Writer) Option {
	return func(s *System, _ optRestriction) {
		s.stdout = w
	}
}

// WithStderr приёмник стандартного вывода ошибок.
func WithStderr(w io.Writer) Option {
	return func(s *System, _ optRestriction) {
		s.stderr = w
	}
}

// WithLogger логгер событий среды.
func WithLogger(log logging.Logger) Option {
	return func(s *System, _ optRestriction) {
		s.log = log
	}
}

// WithScheduler планировщик вместо часов с тиком из настроек.
func WithScheduler(sch sched.Scheduler) Option {
	return func(s *System, _ optRestriction) {
		s.sched = sch
	}
}
