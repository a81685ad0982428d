package errno

import (
	"strconv"
	"strings"
)

// Error ошибка с POSIX кодом. Оборачивается обычным образом,
// код извлекается с помощью AsCode.
type Error struct {
	Code Code
	Msg  string
}

func (e Error) Error() string {
	if e.Msg != "" {
		var b strings.Builder
		b.WriteString(e.Code.String())
		b.WriteByte('[')
		b.WriteString(e.Msg)
		b.WriteByte(']')
		return b.String()
	}

	return e.Code.String()
}

// Is для errors.Is: ошибки совпадают при совпадении кодов.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

func newCodedError(code Code, msg ...string) Error {
	e := Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}

// New ошибка с данным кодом.
func New(code Code, msg ...string) Error {
	return newCodedError(code, msg...)
}

// NewBadDescriptor ошибка обращения к неоткрытому дескриптору.
func NewBadDescriptor(fd int) Error {
	return newCodedError(EBADF, "fd "+strconv.Itoa(fd))
}

// NewInvalidArgument ошибка недопустимых параметров вызова.
func NewInvalidArgument(msg ...string) Error {
	return newCodedError(EINVAL, msg...)
}

// NewBrokenPipe ошибка записи в канал без читающей стороны.
func NewBrokenPipe(msg ...string) Error {
	return newCodedError(EPIPE, msg...)
}

// NewTooManyOpen ошибка исчерпания таблицы дескрипторов.
func NewTooManyOpen(msg ...string) Error {
	return newCodedError(EMFILE, msg...)
}
