package errno

import "errors"

// AsCode получить код соответствующий ошибке. Для ошибок без
// кода возвращается EIO.
func AsCode(err error) Code {
	if err == nil {
		return OK
	}

	var target Error
	if !errors.As(err, &target) {
		return EIO
	}

	return target.Code
}

// Code коды ошибок, значения совпадают с errno в Linux.
type Code int32

const (
	// OK ошибки нет.
	OK Code = 0

	// EBADF дескриптор не открыт.
	EBADF Code = 9

	// EIO ошибка ввода-вывода без уточнения.
	EIO Code = 5

	// EAGAIN данных нет, повторите позже.
	EAGAIN Code = 11

	// EFAULT неверный адрес, в нашем случае – неверный буфер.
	EFAULT Code = 14

	// EINVAL недопустимые аргументы.
	EINVAL Code = 22

	// EMFILE таблица дескрипторов заполнена.
	EMFILE Code = 24

	// EPIPE запись в канал без читателей.
	EPIPE Code = 32
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case EBADF:
		return "EBADF"
	case EIO:
		return "EIO"
	case EAGAIN:
		return "EAGAIN"
	case EFAULT:
		return "EFAULT"
	case EINVAL:
		return "EINVAL"
	case EMFILE:
		return "EMFILE"
	case EPIPE:
		return "EPIPE"
	default:
		return "UNKNOWN_ERROR"
	}
}
