package pipes

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/errno"
)

// Канал с кольцевым буфером. nread и nwrite растут монотонно,
// данные в буфере занимают [nread, nwrite).
type pipe struct {
	id     uuid.UUID
	data   []byte
	nread  uint64
	nwrite uint64

	readOpen  bool
	writeOpen bool
}

func newPipe(size int) *pipe {
	return &pipe{
		id:        uuid.New(),
		data:      make([]byte, size),
		readOpen:  true,
		writeOpen: true,
	}
}

func (p *pipe) buffered() int {
	return int(p.nwrite - p.nread)
}

func (p *pipe) free() int {
	return len(p.data) - p.buffered()
}

type pipeEnd struct {
	p      *pipe
	writer bool
}

func (e *pipeEnd) read(t *Table, buf []byte) (int, error) {
	if e.writer {
		return 0, errors.Wrap(errno.New(errno.EBADF), "read from the write end of a pipe").Stg("pipe-id", e.p.id)
	}
	if len(buf) == 0 {
		return 0, nil
	}

	p := e.p
	for p.buffered() == 0 && p.writeOpen && p.readOpen {
		t.cond.Wait()
	}
	if !p.readOpen {
		// Дескриптор закрыли, пока мы ждали.
		return 0, errors.Wrap(errno.New(errno.EBADF), "read from closed pipe").Stg("pipe-id", p.id)
	}
	if p.buffered() == 0 {
		return 0, io.EOF
	}

	var n int
	for n < len(buf) && p.buffered() > 0 {
		buf[n] = p.data[p.nread%uint64(len(p.data))]
		p.nread++
		n++
	}
	t.notify()

	return n, nil
}

func (e *pipeEnd) write(t *Table, buf []byte) (int, error) {
	if !e.writer {
		return 0, errors.Wrap(errno.New(errno.EBADF), "write to the read end of a pipe").Stg("pipe-id", e.p.id)
	}
	if len(buf) == 0 {
		return 0, nil
	}

	p := e.p
	for p.free() == 0 && p.readOpen && p.writeOpen {
		t.cond.Wait()
	}
	if !p.writeOpen {
		return 0, errors.Wrap(errno.New(errno.EBADF), "write to closed pipe").Stg("pipe-id", p.id)
	}
	if !p.readOpen {
		return 0, errors.Wrap(errno.NewBrokenPipe(), "write pipe").Stg("pipe-id", p.id)
	}

	var n int
	for n < len(buf) && p.free() > 0 {
		p.data[p.nwrite%uint64(len(p.data))] = buf[n]
		p.nwrite++
		n++
	}
	t.notify()

	return n, nil
}

func (e *pipeEnd) readable() bool {
	if e.writer {
		return false
	}

	return e.p.buffered() > 0 || !e.p.writeOpen
}

func (e *pipeEnd) writable() bool {
	if !e.writer {
		return false
	}

	return e.p.free() > 0 || !e.p.readOpen
}

func (e *pipeEnd) exceptional() bool {
	if e.writer {
		return !e.p.readOpen
	}

	return !e.p.writeOpen
}

func (e *pipeEnd) close(t *Table) {
	if e.writer {
		e.p.writeOpen = false
	} else {
		e.p.readOpen = false
	}

	if !e.p.readOpen && !e.p.writeOpen {
		t.log.PipeReleased(e.p.id, e.p.buffered())
	}
}
