// Package ulib пользовательская среда в духе POSIX: дескрипторы и каналы,
// ожидание готовности, форматированный ввод-вывод, генератор случайных чисел.
//
// Вызовы возвращают целые в традиции libc: -1 при ошибке, а код последней
// ошибки доступен через Errno.
package ulib

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/config"
	"github.com/sirkon/ulib/internal/errno"
	"github.com/sirkon/ulib/internal/fdset"
	"github.com/sirkon/ulib/internal/format"
	"github.com/sirkon/ulib/internal/lcg"
	"github.com/sirkon/ulib/internal/logging"
	"github.com/sirkon/ulib/internal/pipes"
	"github.com/sirkon/ulib/internal/scan"
	"github.com/sirkon/ulib/internal/sched"
	"github.com/sirkon/ulib/internal/selector"
)

// New конструктор среды по данным настройкам.
func New(cfg config.Config, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	s := &System{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(s, optRestriction{})
	}

	if s.log == nil {
		s.log = logging.NewStd(nil, cfg.Verbose)
	}
	if s.sched == nil {
		s.sched = sched.NewClock(cfg.Tick)
	}

	s.files = pipes.New(
		pipes.WithCapacity(cfg.Descriptors),
		pipes.WithPipeSize(cfg.PipeSize),
		pipes.WithLogger(s.log),
	)
	if err := s.files.ConsoleInput(Stdin, s.stdin); err != nil {
		return nil, errors.Wrap(err, "set up stdin")
	}
	if err := s.files.Console(Stdout, s.stdout); err != nil {
		return nil, errors.Wrap(err, "set up stdout")
	}
	if err := s.files.Console(Stderr, s.stderr); err != nil {
		return nil, errors.Wrap(err, "set up stderr")
	}

	s.sel = selector.New(
		s.files,
		s.sched,
		selector.WithCapacity(cfg.Descriptors),
		selector.WithLogger(s.log),
	)
	s.rand = lcg.NewLocked(lcg.NewSeeded(cfg.Seed))

	return s, nil
}

// System среда исполнения с собственной таблицей дескрипторов, часами
// и генератором случайных чисел.
type System struct {
	cfg   config.Config
	files *pipes.Table
	sched sched.Scheduler
	sel   *selector.Selector
	rand  *lcg.Locked
	log   logging.Logger
	errno atomic.Int32

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Errno код последней ошибки.
func (s *System) Errno() errno.Code {
	return errno.Code(s.errno.Load())
}

// Pipe создание канала: в первом элементе находится дескриптор для
// чтения, во втором для записи.
func (s *System) Pipe() ([2]int, int) {
	rfd, wfd, err := s.files.Pipe()
	if err != nil {
		return [2]int{-1, -1}, s.fail(err)
	}

	return [2]int{rfd, wfd}, 0
}

// Read чтение из дескриптора. Возвращает число прочитанных байт,
// 0 в конце данных.
func (s *System) Read(fd int, p []byte) int {
	n, err := s.files.Read(fd, p)
	if err != nil && err != io.EOF {
		return s.fail(err)
	}

	return n
}

// Write запись в дескриптор. Возвращает число записанных байт.
func (s *System) Write(fd int, p []byte) int {
	n, err := s.files.Write(fd, p)
	if err != nil {
		return s.fail(err)
	}

	return n
}

// Close закрытие дескриптора.
func (s *System) Close(fd int) int {
	if err := s.files.Close(fd); err != nil {
		return s.fail(err)
	}

	return 0
}

// Select ожидание готовности дескрипторов в течение timeout тиков,
// отрицательный timeout означает бесконечное ожидание.
func (s *System) Select(nfds int, rd, wr, ex *fdset.Set, timeout int) int {
	t := selector.Timeout(timeout)
	if t < 0 {
		t = selector.Infinite
	}

	n, err := s.sel.Select(nfds, rd, wr, ex, t)
	if err != nil {
		return s.fail(err)
	}

	return n
}

// Sleep приостановка на данное число тиков.
func (s *System) Sleep(ticks int) int {
	sched.Sleep(s.sched, sched.Ticks(ticks))
	return 0
}

// Uptime число тиков с момента создания среды.
func (s *System) Uptime() int {
	return int(s.sched.Uptime())
}

// Getpagesize размер страницы.
func (s *System) Getpagesize() int {
	return PageSize
}

// Printf форматированный вывод в стандартный вывод.
func (s *System) Printf(pattern string, args ...any) int {
	return s.Fprintf(Stdout, pattern, args...)
}

// Fprintf форматированный вывод в дескриптор. Возвращает число
// записанных байт.
func (s *System) Fprintf(fd int, pattern string, args ...any) int {
	p := format.NewPrinter(s.files.Writer(fd), format.WithChunkSize(s.cfg.ChunkSize))
	n, err := p.Printf(pattern, args...)
	if err != nil {
		return s.fail(errors.Wrap(err, "print formatted").Int("fd", fd))
	}

	return n
}

// Sprintf форматированный вывод в buf с завершающим нулём. Возвращает
// длину результата или -1, если результат не поместился, в этом случае
// buf содержит обрезанный результат.
func (s *System) Sprintf(buf []byte, pattern string, args ...any) int {
	n, err := format.Sprintf(buf, pattern, args...)
	if err != nil {
		return -1
	}

	return n
}

// Sscanf разбор строки по формату, возвращается число сохранённых значений.
func (s *System) Sscanf(input string, pattern string, args ...any) int {
	return scan.Sscanf(input, pattern, args...)
}

// Rand очередное псевдослучайное число из [0, RandMax].
func (s *System) Rand() int {
	return s.rand.Next()
}

// Srand установка состояния генератора.
func (s *System) Srand(seed uint32) {
	s.rand.Seed(uint64(seed))
}

func (s *System) fail(err error) int {
	s.log.Error(err)
	s.errno.Store(int32(errno.AsCode(err)))
	return -1
}
