package selector

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/fdset"
)

// Результат одного прохода по наборам: готовые подмножества каждого
// из наборов и общее число готовых пар.
type scanResult struct {
	rd    *fdset.Set
	wr    *fdset.Set
	ex    *fdset.Set
	count int
}

func (s *Selector) scan(nfds int, rd, wr, ex *fdset.Set) (res scanResult, err error) {
	if res.rd, err = s.scanSet(nfds, rd, "read", s.ready.Readable); err != nil {
		return res, err
	}
	if res.wr, err = s.scanSet(nfds, wr, "write", s.ready.Writable); err != nil {
		return res, err
	}
	if res.ex, err = s.scanSet(nfds, ex, "except", s.ready.Exceptional); err != nil {
		return res, err
	}

	for _, set := range []*fdset.Set{res.rd, res.wr, res.ex} {
		if set != nil {
			res.count += set.Count()
		}
	}

	return res, nil
}

func (s *Selector) scanSet(
	nfds int,
	set *fdset.Set,
	name string,
	check func(fd int) (bool, error),
) (*fdset.Set, error) {
	if set == nil {
		return nil, nil
	}

	ready, err := fdset.New(set.Capacity())
	if err != nil {
		return nil, errors.Wrap(err, "allocate ready set")
	}

	var checkErr error
	set.Each(func(fd int) bool {
		if fd >= nfds {
			return false
		}

		ok, err := check(fd)
		if err != nil {
			checkErr = errors.Wrap(err, "check descriptor readiness").
				Str("set", name).
				Int("fd", fd)
			return false
		}

		if ok {
			// Под дескриптор место в ready заведомо есть.
			_ = ready.Add(fd)
		}
		return true
	})
	if checkErr != nil {
		return nil, checkErr
	}

	return ready, nil
}

// Сужение наборов до готовых дескрипторов.
func (r scanResult) apply(rd, wr, ex *fdset.Set) {
	for _, v := range [][2]*fdset.Set{{rd, r.rd}, {wr, r.wr}, {ex, r.ex}} {
		if v[0] == nil {
			continue
		}

		// Вместимости совпадают по построению.
		_ = v[0].Retain(v[1])
	}
}
