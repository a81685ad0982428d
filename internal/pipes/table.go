package pipes

import (
	"io"
	"sync"

	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/errno"
	"github.com/sirkon/ulib/internal/fdset"
	"github.com/sirkon/ulib/internal/logging"
	"github.com/sirkon/ulib/internal/waitq"
)

// DefaultPipeSize размер буфера канала по-умолчанию, PIPESIZE в xv6.
const DefaultPipeSize = 512

// Table таблица открытых дескрипторов процесса. Дескрипторы выдаются
// по принципу наименьшего свободного номера.
type Table struct {
	lock    sync.Mutex
	cond    *sync.Cond
	files   []file
	waiters *waitq.Queue

	capacity int
	pipeSize int
	log      logging.Logger
}

type file interface {
	read(t *Table, p []byte) (int, error)
	write(t *Table, p []byte) (int, error)
	readable() bool
	writable() bool
	exceptional() bool
	close(t *Table)
}

// New конструктор пустой таблицы дескрипторов.
func New(opts ...Option) *Table {
	t := &Table{
		waiters:  waitq.New(),
		capacity: fdset.DefaultCapacity,
		pipeSize: DefaultPipeSize,
		log:      logging.Nop{},
	}
	for _, opt := range opts {
		opt(t, optRestriction{})
	}
	t.cond = sync.NewCond(&t.lock)

	return t
}

// Pipe создание канала. Возвращаются дескрипторы читающего и пишущего концов.
func (t *Table) Pipe() (rfd, wfd int, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	p := newPipe(t.pipeSize)
	rfd, err = t.install(&pipeEnd{p: p})
	if err != nil {
		return -1, -1, errors.Wrap(err, "install read end")
	}

	wfd, err = t.install(&pipeEnd{p: p, writer: true})
	if err != nil {
		t.files[rfd] = nil
		return -1, -1, errors.Wrap(err, "install write end")
	}

	t.log.PipeCreated(p.id, rfd, wfd)
	return rfd, wfd, nil
}

// Console установка вывода консоли на данный дескриптор.
func (t *Table) Console(fd int, w io.Writer) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.place(fd, &consoleOut{w: w})
}

// ConsoleInput установка ввода консоли на данный дескриптор.
func (t *Table) ConsoleInput(fd int, r io.Reader) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.place(fd, &consoleIn{r: r})
}

// Read чтение из дескриптора. Для канала вызов блокируется до появления данных
// или закрытия пишущего конца, в последнем случае возвращается io.EOF.
func (t *Table) Read(fd int, p []byte) (int, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return 0, err
	}

	n, err := f.read(t, p)
	if err != nil && err != io.EOF {
		return n, errors.Wrap(err, "read descriptor").Int("fd", fd)
	}

	return n, err
}

// Write запись в дескриптор. Для канала вызов блокируется, пока в буфере нет
// места, и записывает столько, сколько поместилось: частичная запись не ошибка.
func (t *Table) Write(fd int, p []byte) (int, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return 0, err
	}

	n, err := f.write(t, p)
	if err != nil {
		return n, errors.Wrap(err, "write descriptor").Int("fd", fd)
	}

	return n, nil
}

// Close закрытие дескриптора.
func (t *Table) Close(fd int) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return err
	}

	t.files[fd] = nil
	f.close(t)
	t.notify()

	return nil
}

// Open количество открытых дескрипторов.
func (t *Table) Open() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	var res int
	for _, f := range t.files {
		if f != nil {
			res++
		}
	}

	return res
}

// Writer писалка в данный дескриптор.
func (t *Table) Writer(fd int) io.Writer {
	return descriptorWriter{t: t, fd: fd}
}

// Пробуждение всех, кто ждёт изменения состояния таблицы.
// Вызывается при захваченном lock.
func (t *Table) notify() {
	t.waiters.WakeAll()
	t.cond.Broadcast()
}

func (t *Table) get(fd int) (file, error) {
	if fd < 0 || fd >= len(t.files) || t.files[fd] == nil {
		return nil, errno.NewBadDescriptor(fd)
	}

	return t.files[fd], nil
}

func (t *Table) install(f file) (int, error) {
	for i, v := range t.files {
		if v == nil {
			t.files[i] = f
			return i, nil
		}
	}

	if len(t.files) >= t.capacity {
		return -1, errors.Wrap(errno.NewTooManyOpen(), "allocate descriptor").Int("capacity", t.capacity)
	}

	t.files = append(t.files, f)
	return len(t.files) - 1, nil
}

func (t *Table) place(fd int, f file) error {
	if fd < 0 || fd >= t.capacity {
		return errors.Wrap(errno.NewInvalidArgument("descriptor is out of table range"), "place descriptor").
			Int("fd", fd).
			Int("capacity", t.capacity)
	}

	for len(t.files) <= fd {
		t.files = append(t.files, nil)
	}

	if old := t.files[fd]; old != nil {
		old.close(t)
	}
	t.files[fd] = f
	t.notify()

	return nil
}

type descriptorWriter struct {
	t  *Table
	fd int
}

func (w descriptorWriter) Write(p []byte) (int, error) {
	return w.t.Write(w.fd, p)
}
