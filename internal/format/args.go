package format

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Целое в представлении пригодном для всех директив: знаковое значение и
// беззнаковое, обрезанное до ширины исходного типа.
type integer struct {
	s      int64
	u      uint64
	signed bool
}

func fromInteger[T constraints.Integer](v T) integer {
	width := uint(unsafe.Sizeof(v)) * 8
	u := uint64(v)
	if width < 64 {
		u &= 1<<width - 1
	}

	var one T = 1
	return integer{
		s:      int64(v),
		u:      u,
		signed: -one < 0,
	}
}

func asInteger(arg any) (integer, bool) {
	switch v := arg.(type) {
	case int:
		return fromInteger(v), true
	case int8:
		return fromInteger(v), true
	case int16:
		return fromInteger(v), true
	case int32:
		return fromInteger(v), true
	case int64:
		return fromInteger(v), true
	case uint:
		return fromInteger(v), true
	case uint8:
		return fromInteger(v), true
	case uint16:
		return fromInteger(v), true
	case uint32:
		return fromInteger(v), true
	case uint64:
		return fromInteger(v), true
	case uintptr:
		return fromInteger(v), true
	}

	// Именованные целые типы.
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		width := uint(rv.Type().Bits())
		s := rv.Int()
		u := uint64(s)
		if width < 64 {
			u &= 1<<width - 1
		}
		return integer{s: s, u: u, signed: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return integer{s: int64(u), u: u}, true
	default:
		return integer{}, false
	}
}

func asString(arg any) (string, bool) {
	switch v := arg.(type) {
	case nil:
		return nullString, true
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nullString, true
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(arg)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}

func asPointer(arg any) (uintptr, bool) {
	switch v := arg.(type) {
	case nil:
		return 0, true
	case uintptr:
		return v, true
	case unsafe.Pointer:
		return uintptr(v), true
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return rv.Pointer(), true
	case reflect.Uintptr:
		return uintptr(rv.Uint()), true
	default:
		return 0, false
	}
}
