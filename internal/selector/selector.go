package selector

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/errno"
	"github.com/sirkon/ulib/internal/fdset"
	"github.com/sirkon/ulib/internal/logging"
	"github.com/sirkon/ulib/internal/sched"
)

// Readiness источник сведений о готовности дескрипторов.
type Readiness interface {
	Readable(fd int) (bool, error)
	Writable(fd int) (bool, error)
	Exceptional(fd int) (bool, error)
}

// Notifier поставщик уведомлений об изменении готовности. Если источник
// готовности реализует этот интерфейс, то ожидание прерывается сразу же
// при изменении, иначе готовность перепроверяется раз в квант.
type Notifier interface {
	Subscribe() (wake <-chan struct{}, cancel func())
}

// Timeout срок ожидания в тиках. 0 означает однократную проверку.
type Timeout int64

// Infinite бесконечное ожидание.
const Infinite Timeout = -1

// New конструктор мультиплексора.
func New(r Readiness, s sched.Scheduler, opts ...Option) *Selector {
	res := &Selector{
		ready:    r,
		sched:    s,
		capacity: fdset.DefaultCapacity,
		log:      logging.Nop{},
	}
	if n, ok := r.(Notifier); ok {
		res.notify = n
	}
	for _, opt := range opts {
		opt(res, optRestriction{})
	}

	return res
}

// Selector мультиплексор ожидания готовности дескрипторов, аналог select.
type Selector struct {
	ready    Readiness
	notify   Notifier
	sched    sched.Scheduler
	capacity int
	log      logging.Logger
}

// Select ожидание готовности дескрипторов 0..nfds-1 из данных наборов.
// Nil наборы не рассматриваются.
//
// При наличии готовых дескрипторов возвращается число пар (дескриптор, набор)
// в состоянии готовности, а каждый из наборов изменяется так, что в нём
// остаются только готовые дескрипторы. По истечении срока все наборы
// очищаются и возвращается 0. При ошибке наборы не изменяются.
func (s *Selector) Select(nfds int, rd, wr, ex *fdset.Set, timeout Timeout) (int, error) {
	if err := s.validate(nfds, rd, wr, ex, timeout); err != nil {
		return 0, err
	}

	var deadline sched.Deadline
	if timeout > 0 {
		deadline = s.sched.After(sched.Ticks(timeout))
	}
	start := s.sched.Uptime()

	var logged bool
	for {
		var wake <-chan struct{}
		cancel := func() {}
		if s.notify != nil && timeout != 0 {
			// Регистрируемся до проверки, чтобы не пропустить изменение
			// между проверкой и ожиданием.
			wake, cancel = s.notify.Subscribe()
		}

		res, err := s.scan(nfds, rd, wr, ex)
		if err != nil {
			cancel()
			return 0, err
		}

		if res.count > 0 {
			cancel()
			res.apply(rd, wr, ex)
			return res.count, nil
		}

		if timeout == 0 || (deadline != nil && deadline.Expired()) {
			cancel()
			clearAll(rd, wr, ex)
			if timeout != 0 {
				s.log.SelectExpired(nfds, int64(s.sched.Uptime()-start))
			}
			return 0, nil
		}

		if !logged {
			s.log.SelectBlocked(nfds, int64(timeout))
			logged = true
		}

		s.sched.Yield(wake)
		cancel()
	}
}

func (s *Selector) validate(nfds int, rd, wr, ex *fdset.Set, timeout Timeout) error {
	if nfds < 0 || nfds > s.capacity {
		return errors.Wrap(errno.NewInvalidArgument("descriptors count is out of range"), "validate select").
			Int("nfds", nfds).
			Int("capacity", s.capacity)
	}

	if timeout < 0 && timeout != Infinite {
		return errors.Wrap(errno.NewInvalidArgument("negative timeout"), "validate select").
			Int64("timeout", int64(timeout))
	}

	for _, v := range []struct {
		name string
		set  *fdset.Set
	}{
		{name: "read", set: rd},
		{name: "write", set: wr},
		{name: "except", set: ex},
	} {
		if v.set == nil {
			continue
		}

		if v.set.Capacity() < nfds {
			return errors.Wrap(errno.NewInvalidArgument("descriptor set cannot hold nfds descriptors"), "validate select").
				Str("set", v.name).
				Int("set-capacity", v.set.Capacity()).
				Int("nfds", nfds)
		}
	}

	return nil
}

func clearAll(sets ...*fdset.Set) {
	for _, set := range sets {
		if set != nil {
			set.Clear()
		}
	}
}
