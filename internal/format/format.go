package format

import (
	"io"

	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/bufmng"
	"github.com/sirkon/ulib/internal/mpio"
)

// ErrTruncated результат форматирования не поместился в буфер.
const ErrTruncated errors.Const = "formatted output truncated"

// Fprintf форматированный вывод в w порциями. Частичные записи в w
// дописываются до конца. Возвращается число записанных байт.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return NewPrinter(w).Printf(format, args...)
}

// Sprintf форматированный вывод в dst. Записывается не более len(dst)-1
// байт результата, за которыми следует завершающий ноль. Возвращается
// число байт результата без нуля. Если результат не поместился, то
// возвращается ErrTruncated, а dst содержит обрезанный, но завершённый
// нулём результат.
func Sprintf(dst []byte, format string, args ...any) (int, error) {
	s := boundedSink{dst: dst}
	_ = render(&s, format, args)

	if len(dst) == 0 {
		return 0, errors.Wrap(ErrTruncated, "no room for terminating zero").
			Int("required", s.required+1)
	}

	dst[s.n] = 0
	if s.required > s.n {
		return s.n, errors.Wrap(ErrTruncated, "format into buffer").
			Int("capacity", len(dst)).
			Int("required", s.required+1)
	}

	return s.n, nil
}

// Append добавляет результат форматирования к dst без ограничений на размер.
func Append(dst []byte, format string, args ...any) []byte {
	s := appendSink{buf: dst}
	_ = render(&s, format, args)

	return s.buf
}

// String результат форматирования строкой.
func String(format string, args ...any) string {
	return string(Append(nil, format, args...))
}

// NewPrinter конструктор писалки форматированного вывода в w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p, printerOptRestriction{})
	}
	if p.buf == nil {
		p.buf = bufmng.New(bufmng.DefaultFrame)
	}

	return p
}

// Printer форматированный вывод в данную писалку с переиспользованием
// буфера порций между вызовами.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Printer struct {
	w   io.Writer
	buf *bufmng.BufferManager
}

// Printf форматированный вывод.
func (p *Printer) Printf(format string, args ...any) (int, error) {
	s := streamSink{
		w:   p.w,
		buf: p.buf.Frame(),
	}
	if err := render(&s, format, args); err != nil {
		return s.written, err
	}

	if err := s.flush(); err != nil {
		return s.written, err
	}

	return s.written, nil
}

// PrinterOption определение опции Printer.
type PrinterOption func(p *Printer, _ printerOptRestriction)

type printerOptRestriction struct{}

// WithChunkSize размер порции, которыми вывод отправляется в писалку.
func WithChunkSize(size int) PrinterOption {
	return func(p *Printer, _ printerOptRestriction) {
		p.buf = bufmng.New(size)
	}
}

type streamSink struct {
	w       io.Writer
	buf     []byte
	written int
}

func (s *streamSink) writeString(str string) error {
	for len(str) > 0 {
		if len(s.buf) == cap(s.buf) {
			if err := s.flush(); err != nil {
				return err
			}
		}

		n := copy(s.buf[len(s.buf):cap(s.buf)], str)
		s.buf = s.buf[:len(s.buf)+n]
		str = str[n:]
	}

	return nil
}

func (s *streamSink) write(p []byte) error {
	for len(p) > 0 {
		if len(s.buf) == cap(s.buf) {
			if err := s.flush(); err != nil {
				return err
			}
		}

		n := copy(s.buf[len(s.buf):cap(s.buf)], p)
		s.buf = s.buf[:len(s.buf)+n]
		p = p[n:]
	}

	return nil
}

func (s *streamSink) flush() error {
	if len(s.buf) == 0 {
		return nil
	}

	n, err := mpio.WriteFull(s.w, s.buf)
	s.written += n
	s.buf = s.buf[:0]
	if err != nil {
		return errors.Wrap(err, "write formatted chunk").Int("written-so-far", s.written)
	}

	return nil
}

// Запись в буфер фиксированного размера с местом под завершающий ноль.
type boundedSink struct {
	dst      []byte
	n        int
	required int
}

func (s *boundedSink) writeString(str string) error {
	s.required += len(str)
	if room := len(s.dst) - 1 - s.n; room > 0 {
		s.n += copy(s.dst[s.n:len(s.dst)-1], str)
	}

	return nil
}

func (s *boundedSink) write(p []byte) error {
	s.required += len(p)
	if room := len(s.dst) - 1 - s.n; room > 0 {
		s.n += copy(s.dst[s.n:len(s.dst)-1], p)
	}

	return nil
}

type appendSink struct {
	buf []byte
}

func (s *appendSink) writeString(str string) error {
	s.buf = append(s.buf, str...)
	return nil
}

func (s *appendSink) write(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}
