package format

import (
	"reflect"
	"strconv"
	"strings"
)

const (
	nullString = "(null)"
	hexDigits  = "0123456789abcdef"

	// Ширина указателя в шестнадцатеричных цифрах.
	pointerDigits = 16
)

// Приёмник форматированного вывода.
type output interface {
	writeString(s string) error
	write(p []byte) error
}

// Однократный проход по формату слева направо. Литеральные участки копируются
// как есть, каждая директива кроме %% потребляет ровно один аргумент.
// Неизвестные директивы выводятся как есть и аргумент не потребляют.
func render(out output, format string, args []any) error {
	var scratch [32]byte
	var next int

	for len(format) > 0 {
		i := strings.IndexByte(format, '%')
		if i < 0 {
			return out.writeString(format)
		}
		if i > 0 {
			if err := out.writeString(format[:i]); err != nil {
				return err
			}
		}
		format = format[i:]

		if len(format) == 1 {
			// Одинокий % в конце формата.
			return out.writeString(format)
		}

		directive := format[:2]
		format = format[2:]

		verb := directive[1]
		if verb == '%' {
			if err := out.writeString("%"); err != nil {
				return err
			}
			continue
		}

		if !supported(verb) || next >= len(args) {
			if err := out.writeString(directive); err != nil {
				return err
			}
			continue
		}

		arg := args[next]
		next++

		if err := convert(out, scratch[:0], verb, arg); err != nil {
			return err
		}
	}

	return nil
}

func supported(verb byte) bool {
	switch verb {
	case 'd', 'o', 'x', 'c', 's', 'p':
		return true
	default:
		return false
	}
}

func convert(out output, buf []byte, verb byte, arg any) error {
	switch verb {
	case 'd':
		v, ok := asInteger(arg)
		if !ok {
			break
		}
		if v.signed {
			return out.write(strconv.AppendInt(buf, v.s, 10))
		}
		return out.write(strconv.AppendUint(buf, v.u, 10))

	case 'o':
		v, ok := asInteger(arg)
		if !ok {
			break
		}
		return out.write(strconv.AppendUint(buf, v.u, 8))

	case 'x':
		v, ok := asInteger(arg)
		if !ok {
			break
		}
		return out.write(strconv.AppendUint(buf, v.u, 16))

	case 'c':
		v, ok := asInteger(arg)
		if !ok {
			break
		}
		return out.write(append(buf, byte(v.u)))

	case 's':
		v, ok := asString(arg)
		if !ok {
			break
		}
		if i := strings.IndexByte(v, 0); i >= 0 {
			v = v[:i]
		}
		return out.writeString(v)

	case 'p':
		v, ok := asPointer(arg)
		if !ok {
			break
		}
		return out.write(appendPointer(buf, uint64(v)))
	}

	return out.writeString(badArgument(verb, arg))
}

// Указатель выводится как 0x и 16 шестнадцатеричных цифр с ведущими нулями.
func appendPointer(buf []byte, v uint64) []byte {
	buf = append(buf, '0', 'x')
	for i := pointerDigits - 1; i >= 0; i-- {
		buf = append(buf, hexDigits[(v>>(uint(i)*4))&0xf])
	}

	return buf
}

func badArgument(verb byte, arg any) string {
	typ := "<nil>"
	if arg != nil {
		typ = reflect.TypeOf(arg).String()
	}

	var b strings.Builder
	b.WriteString("%!")
	b.WriteByte(verb)
	b.WriteByte('(')
	b.WriteString(typ)
	b.WriteByte(')')

	return b.String()
}
