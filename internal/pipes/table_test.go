package pipes

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/errno"
	"github.com/sirkon/ulib/internal/tlog"
)

type readiness struct {
	Readable    bool
	Writable    bool
	Exceptional bool
}

func stateOf(t *testing.T, tbl *Table, fd int) readiness {
	t.Helper()

	r, err := tbl.Readable(fd)
	if tlog.Check(t, err) {
		return readiness{}
	}
	w, err := tbl.Writable(fd)
	if tlog.Check(t, err) {
		return readiness{}
	}
	e, err := tbl.Exceptional(fd)
	if tlog.Check(t, err) {
		return readiness{}
	}

	return readiness{Readable: r, Writable: w, Exceptional: e}
}

func TestPipeReadWrite(t *testing.T) {
	tbl := New()
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}
	if rfd != 0 || wfd != 1 {
		t.Errorf("descriptors 0 and 1 expected, got %d and %d", rfd, wfd)
	}

	deepequal.SideBySide(t, "fresh read end", readiness{}, stateOf(t, tbl, rfd))
	deepequal.SideBySide(t, "fresh write end", readiness{Writable: true}, stateOf(t, tbl, wfd))

	if _, err := tbl.Write(wfd, []byte("Hello, World!")); err != nil {
		tlog.Error(t, errors.Wrap(err, "write pipe"))
		return
	}
	deepequal.SideBySide(t, "read end with data", readiness{Readable: true}, stateOf(t, tbl, rfd))

	var buf [1024]byte
	n, err := tbl.Read(rfd, buf[:])
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read pipe"))
		return
	}
	if string(buf[:n]) != "Hello, World!" {
		t.Errorf("Hello, World! expected, got %q", buf[:n])
	}

	if err := tbl.Close(wfd); err != nil {
		tlog.Error(t, errors.Wrap(err, "close write end"))
		return
	}
	deepequal.SideBySide(
		t,
		"read end after hang-up",
		readiness{Readable: true, Exceptional: true},
		stateOf(t, tbl, rfd),
	)
	if _, err := tbl.Read(rfd, buf[:]); err != io.EOF {
		t.Errorf("io.EOF expected after write end was closed, got %v", err)
	}
}

func TestPipePartialWrite(t *testing.T) {
	tbl := New(WithPipeSize(4))
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}

	n, err := tbl.Write(wfd, []byte("abcdef"))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "write pipe"))
		return
	}
	if n != 4 {
		t.Errorf("partial write of 4 bytes expected, got %d", n)
	}
	deepequal.SideBySide(t, "full write end", readiness{}, stateOf(t, tbl, wfd))

	var buf [2]byte
	if _, err := tbl.Read(rfd, buf[:]); err != nil {
		tlog.Error(t, errors.Wrap(err, "read pipe"))
		return
	}
	if string(buf[:]) != "ab" {
		t.Errorf("ab expected, got %q", buf[:])
	}

	// Запись переходит через границу кольцевого буфера.
	n, err = tbl.Write(wfd, []byte("ef"))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "write pipe again"))
		return
	}
	if n != 2 {
		t.Errorf("whole write expected, got %d", n)
	}

	var rest [8]byte
	n, err = tbl.Read(rfd, rest[:])
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read the rest"))
		return
	}
	if string(rest[:n]) != "cdef" {
		t.Errorf("cdef expected, got %q", rest[:n])
	}
}

func TestPipeBlockingRead(t *testing.T) {
	tbl := New()
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}

	got := make(chan string)
	go func() {
		var buf [16]byte
		n, err := tbl.Read(rfd, buf[:])
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "read pipe"))
		}
		got <- string(buf[:n])
	}()

	time.Sleep(10 * time.Millisecond)
	if _, err := tbl.Write(wfd, []byte("late")); err != nil {
		tlog.Error(t, errors.Wrap(err, "write pipe"))
		return
	}

	select {
	case v := <-got:
		if v != "late" {
			t.Errorf("late expected, got %q", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("blocked reader must be woken by the write")
	}
}

func TestPipeBrokenPipe(t *testing.T) {
	tbl := New()
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}

	if err := tbl.Close(rfd); err != nil {
		tlog.Error(t, errors.Wrap(err, "close read end"))
		return
	}
	deepequal.SideBySide(
		t,
		"write end without readers",
		readiness{Writable: true, Exceptional: true},
		stateOf(t, tbl, wfd),
	)

	_, err = tbl.Write(wfd, []byte("x"))
	tlog.Expect(t, err, errno.New(errno.EPIPE))
}

func TestTableBadDescriptors(t *testing.T) {
	tbl := New()
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}

	var buf [4]byte
	_, err = tbl.Read(wfd, buf[:])
	tlog.Expect(t, err, errno.New(errno.EBADF))
	_, err = tbl.Write(rfd, buf[:])
	tlog.Expect(t, err, errno.New(errno.EBADF))
	_, err = tbl.Readable(42)
	tlog.Expect(t, err, errno.New(errno.EBADF))
	tlog.Expect(t, tbl.Close(-1), errno.New(errno.EBADF))

	if err := tbl.Close(rfd); err != nil {
		tlog.Error(t, errors.Wrap(err, "close read end"))
		return
	}
	tlog.Expect(t, tbl.Close(rfd), errno.New(errno.EBADF))
}

func TestTableAllocation(t *testing.T) {
	tbl := New(WithCapacity(5))

	var out bytes.Buffer
	if err := tbl.Console(2, &out); err != nil {
		tlog.Error(t, errors.Wrap(err, "attach console"))
		return
	}

	r1, w1, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create first pipe"))
		return
	}
	deepequal.SideBySide(t, "lowest free descriptors", []int{0, 1}, []int{r1, w1})

	r2, w2, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create second pipe"))
		return
	}
	deepequal.SideBySide(t, "descriptors after console", []int{3, 4}, []int{r2, w2})

	_, _, err = tbl.Pipe()
	tlog.Expect(t, err, errno.New(errno.EMFILE))
	if tbl.Open() != 5 {
		t.Errorf("failed pipe must not leak descriptors, %d open", tbl.Open())
	}

	if err := tbl.Close(r1); err != nil {
		tlog.Error(t, errors.Wrap(err, "close"))
		return
	}
	if err := tbl.Close(w1); err != nil {
		tlog.Error(t, errors.Wrap(err, "close"))
		return
	}
	r3, w3, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create third pipe"))
		return
	}
	deepequal.SideBySide(t, "reused descriptors", []int{0, 1}, []int{r3, w3})

	tlog.Expect(t, tbl.Console(5, &out), errno.New(errno.EINVAL))
}

func TestTableConsole(t *testing.T) {
	tbl := New()
	var out bytes.Buffer
	if err := tbl.Console(1, &out); err != nil {
		tlog.Error(t, errors.Wrap(err, "attach console output"))
		return
	}
	if err := tbl.ConsoleInput(0, bytes.NewReader([]byte("typed"))); err != nil {
		tlog.Error(t, errors.Wrap(err, "attach console input"))
		return
	}

	if _, err := io.WriteString(tbl.Writer(1), "printed"); err != nil {
		tlog.Error(t, errors.Wrap(err, "write console"))
		return
	}
	if out.String() != "printed" {
		t.Errorf("printed expected on console, got %q", out.String())
	}
	deepequal.SideBySide(t, "console output", readiness{Writable: true}, stateOf(t, tbl, 1))
	deepequal.SideBySide(t, "console input", readiness{}, stateOf(t, tbl, 0))

	var buf [8]byte
	n, err := tbl.Read(0, buf[:])
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read console"))
		return
	}
	if string(buf[:n]) != "typed" {
		t.Errorf("typed expected, got %q", buf[:n])
	}
}

func TestTableSubscribe(t *testing.T) {
	tbl := New()
	rfd, wfd, err := tbl.Pipe()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create pipe"))
		return
	}

	wake, cancel := tbl.Subscribe()
	defer cancel()
	idle, cancelIdle := tbl.Subscribe()
	cancelIdle()

	select {
	case <-wake:
		t.Fatal("nothing happened yet")
	default:
	}

	if _, err := tbl.Write(wfd, []byte("!")); err != nil {
		tlog.Error(t, errors.Wrap(err, "write pipe"))
		return
	}

	select {
	case <-wake:
	default:
		t.Error("subscriber must be woken by the write")
	}
	select {
	case <-idle:
		t.Error("cancelled subscriber must not be woken")
	default:
	}

	if ok, err := tbl.Readable(rfd); err != nil || !ok {
		t.Errorf("read end must be readable, got %v, %v", ok, err)
	}
}
