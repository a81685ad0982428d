package logging

import (
	"fmt"
	"log"
)

// NewStd логгер поверх данного log.Logger. При nil используется стандартный
// логгер пакета log. Отладочные события пишутся только при verbose.
func NewStd(l *log.Logger, verbose bool) *Std {
	if l == nil {
		l = log.Default()
	}

	return &Std{
		log:     l,
		verbose: verbose,
	}
}

// Std реализация Logger поверх пакета log.
type Std struct {
	log     *log.Logger
	verbose bool
}

// PipeCreated для реализации Logger.
func (s *Std) PipeCreated(pipeID fmt.Stringer, readFD, writeFD int) {
	if !s.verbose {
		return
	}

	s.log.Printf("pipe %s created: read fd %d, write fd %d", pipeID, readFD, writeFD)
}

// PipeReleased для реализации Logger.
func (s *Std) PipeReleased(pipeID fmt.Stringer, unread int) {
	if unread > 0 {
		s.log.Printf("pipe %s released with %d unread bytes", pipeID, unread)
		return
	}

	if s.verbose {
		s.log.Printf("pipe %s released", pipeID)
	}
}

// SelectBlocked для реализации Logger.
func (s *Std) SelectBlocked(nfds int, timeout int64) {
	if !s.verbose {
		return
	}

	s.log.Printf("select over %d descriptors blocked for up to %d ticks", nfds, timeout)
}

// SelectExpired для реализации Logger.
func (s *Std) SelectExpired(nfds int, waited int64) {
	if !s.verbose {
		return
	}

	s.log.Printf("select over %d descriptors expired after %d ticks", nfds, waited)
}

// Error для реализации Logger.
func (s *Std) Error(err error) {
	s.log.Println(err)
}

// Nop логгер, который ничего не делает.
type Nop struct{}

func (Nop) PipeCreated(fmt.Stringer, int, int) {}
func (Nop) PipeReleased(fmt.Stringer, int)     {}
func (Nop) SelectBlocked(int, int64)           {}
func (Nop) SelectExpired(int, int64)           {}
func (Nop) Error(error)                        {}

var (
	_ Logger = new(Std)
	_ Logger = Nop{}
)
