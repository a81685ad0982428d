package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/ulib/internal/tlog"
)

func TestRender(t *testing.T) {
	t.Run("std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("plain error"))
	})

	t.Run("error-with-context", func(t *testing.T) {
		tlog.Log(t, errors.New("descriptor failure").Int("fd", 3).Str("end", "read"))
	})

	t.Run("expect-wrapped-const", func(t *testing.T) {
		const errTarget errors.Const = "target"
		if !tlog.Expect(t, errors.Wrap(errTarget, "wrapped").Int("fd", 5), errTarget) {
			t.Error("wrapped const must match")
		}
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil must not be reported")
		}
	})
}
