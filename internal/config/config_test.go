package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/ulib/internal/tlog"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
tick: 10ms
pipe_size: 64
seed: 42
verbose: true
`))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "parse config"))
		return
	}

	want := Default()
	want.Tick = 10 * time.Millisecond
	want.PipeSize = 64
	want.Seed = 42
	want.Verbose = true
	deepequal.SideBySide(t, "config", want, cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed yaml",
			data: "tick: [",
		},
		{
			name: "zero tick",
			data: "tick: 0s",
		},
		{
			name: "few descriptors",
			data: "descriptors: 2",
		},
		{
			name: "negative pipe size",
			data: "pipe_size: -1",
		},
		{
			name: "zero chunk",
			data: "chunk_size: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("error expected")
			} else {
				tlog.Log(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ulib.yaml")
	if err := os.WriteFile(path, []byte("descriptors: 64\n"), 0644); err != nil {
		tlog.Error(t, errors.Wrap(err, "write config file"))
		return
	}

	cfg, err := Load(path)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "load config"))
		return
	}
	if cfg.Descriptors != 64 {
		t.Errorf("64 descriptors expected, got %d", cfg.Descriptors)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must be reported")
	}
}
