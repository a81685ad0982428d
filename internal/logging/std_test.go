package logging

import (
	"bytes"
	stderrs "errors"
	"log"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestStdVerbosity(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	var quiet bytes.Buffer
	q := NewStd(log.New(&quiet, "", 0), false)
	q.PipeCreated(id, 3, 4)
	q.SelectBlocked(4, 10)
	q.SelectExpired(4, 10)
	q.PipeReleased(id, 0)
	if quiet.Len() != 0 {
		t.Errorf("no debug output expected, got %q", quiet.String())
	}

	q.PipeReleased(id, 13)
	q.Error(stderrs.New("broken"))
	want := "pipe 6ba7b810-9dad-11d1-80b4-00c04fd430c8 released with 13 unread bytes\nbroken\n"
	if quiet.String() != want {
		t.Errorf("%q expected, got %q", want, quiet.String())
	}

	var loud bytes.Buffer
	l := NewStd(log.New(&loud, "", 0), true)
	l.PipeCreated(id, 3, 4)
	l.SelectBlocked(4, 10)
	if lines := strings.Count(loud.String(), "\n"); lines != 2 {
		t.Errorf("2 lines expected in verbose mode, got %d: %q", lines, loud.String())
	}
}
