package mpio

import "io"

// WriteFull запись всего buf в w. Частичная запись не является ошибкой:
// запись повторяется с остатка до тех пор, пока не будет записано всё
// или не произойдёт ошибка. Если две записи подряд вернули (0, nil),
// то возвращается ErrNoProgress.
func WriteFull(w io.Writer, buf []byte) (n int, err error) {
	var stalled int
	for n < len(buf) {
		var nn int
		nn, err = w.Write(buf[n:])
		n += nn
		if err != nil {
			return n, err
		}

		if nn > 0 {
			stalled = 0
			continue
		}

		stalled++
		if stalled > 1 {
			return n, ErrNoProgress
		}
	}

	return n, nil
}
