package pipes

import (
	"io"

	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/errno"
)

// Вывод консоли, всегда готов к записи.
type consoleOut struct {
	w io.Writer
}

func (c *consoleOut) read(*Table, []byte) (int, error) {
	return 0, errors.Wrap(errno.New(errno.EBADF), "read from console output")
}

func (c *consoleOut) write(_ *Table, p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, errors.Wrap(err, "write console")
	}

	return n, nil
}

func (c *consoleOut) readable() bool    { return false }
func (c *consoleOut) writable() bool    { return true }
func (c *consoleOut) exceptional() bool { return false }
func (c *consoleOut) close(*Table)      {}

// Ввод консоли. Готовность к чтению узнать нельзя без блокировки,
// поэтому для select он никогда не готов.
type consoleIn struct {
	r io.Reader
}

func (c *consoleIn) read(t *Table, p []byte) (int, error) {
	// Чтение может блокироваться надолго, таблицу на это время отпускаем.
	t.lock.Unlock()
	n, err := c.r.Read(p)
	t.lock.Lock()

	if err != nil && err != io.EOF {
		return n, errors.Wrap(err, "read console")
	}

	return n, err
}

func (c *consoleIn) write(*Table, []byte) (int, error) {
	return 0, errors.Wrap(errno.New(errno.EBADF), "write to console input")
}

func (c *consoleIn) readable() bool    { return false }
func (c *consoleIn) writable() bool    { return false }
func (c *consoleIn) exceptional() bool { return false }
func (c *consoleIn) close(*Table)      {}
