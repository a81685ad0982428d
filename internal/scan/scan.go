package scan

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sscanf разбор input по формату. Пробельные символы формата соответствуют
// любой, в том числе пустой, последовательности пробельных символов входа,
// прочие литеральные символы должны совпасть в точности, %% соответствует %.
// Из директив поддерживается только %d с аргументами *int, *int8, *int16,
// *int32 и *int64.
//
// Разбор прекращается на первом несоответствии. Возвращается число
// сохранённых значений, аргументы соответствующие несостоявшимся
// преобразованиям не изменяются.
func Sscanf(input string, format string, args ...any) int {
	var count int
	var next int

	for i := 0; i < len(format); i++ {
		c := format[i]

		switch {
		case isSpace(c):
			input = skipSpaces(input)
			continue

		case c != '%':
			if len(input) == 0 || input[0] != c {
				return count
			}
			input = input[1:]
			continue
		}

		if i+1 >= len(format) {
			return count
		}
		i++

		switch format[i] {
		case '%':
			input = skipSpaces(input)
			if len(input) == 0 || input[0] != '%' {
				return count
			}
			input = input[1:]

		case 'd':
			if next >= len(args) {
				return count
			}

			value, n, ok := Decimal(input)
			if !ok || !store(args[next], value) {
				return count
			}
			next++
			count++
			input = input[n:]

		default:
			return count
		}
	}

	return count
}

// Decimal разбор десятичного целого в начале input: ведущие пробельные символы,
// необязательный знак и максимальная последовательность цифр. Возвращает
// значение, число потреблённых байт и признак того, что была хотя бы одна
// цифра. Значения выходящие за пределы int64 насыщаются.
func Decimal(input string) (value int64, n int, ok bool) {
	i := len(input) - len(skipSpaces(input))

	neg := false
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		neg = input[i] == '-'
		i++
	}

	start := i
	var mag uint64
	overflow := false
	for ; i < len(input) && isDigit(input[i]); i++ {
		d := uint64(input[i] - '0')
		if mag > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		mag = mag*10 + d
	}
	if i == start {
		return 0, 0, false
	}

	switch {
	case neg && (overflow || mag > 1<<63):
		value = math.MinInt64
	case neg:
		value = -int64(mag)
	case overflow || mag > math.MaxInt64:
		value = math.MaxInt64
	default:
		value = int64(mag)
	}

	return value, i, true
}

func store(arg any, value int64) bool {
	switch v := arg.(type) {
	case *int:
		return storeInto(v, value)
	case *int8:
		return storeInto(v, value)
	case *int16:
		return storeInto(v, value)
	case *int32:
		return storeInto(v, value)
	case *int64:
		return storeInto(v, value)
	default:
		return false
	}
}

// Сохранение с насыщением до ширины целевого типа.
func storeInto[T constraints.Signed](dst *T, value int64) bool {
	if dst == nil {
		return false
	}

	hi := maxOf[T]()
	lo := -hi - 1
	switch {
	case value > int64(hi):
		*dst = hi
	case value < int64(lo):
		*dst = lo
	default:
		*dst = T(value)
	}

	return true
}

func maxOf[T constraints.Signed]() T {
	var v T
	width := uint(unsafe.Sizeof(v)) * 8
	return T(^uint64(0) >> (65 - width))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func skipSpaces(s string) string {
	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}

	return s
}
