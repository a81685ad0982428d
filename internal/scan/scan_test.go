package scan

import (
	"math"
	"testing"
)

func TestSscanfDecimal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		format    string
		wantCount int
		want      int
	}{
		{
			name:      "plain",
			input:     "1234",
			format:    "%d",
			wantCount: 1,
			want:      1234,
		},
		{
			name:      "leading spaces and sign",
			input:     " \t -56xyz",
			format:    "%d",
			wantCount: 1,
			want:      -56,
		},
		{
			name:      "explicit plus",
			input:     "+7",
			format:    "%d",
			wantCount: 1,
			want:      7,
		},
		{
			name:      "no digits",
			input:     "abc",
			format:    "%d",
			wantCount: 0,
			want:      -1,
		},
		{
			name:      "sign only",
			input:     "-",
			format:    "%d",
			wantCount: 0,
			want:      -1,
		},
		{
			name:      "empty input",
			input:     "",
			format:    "%d",
			wantCount: 0,
			want:      -1,
		},
		{
			name:      "literal prefix",
			input:     "fd: 3",
			format:    "fd: %d",
			wantCount: 1,
			want:      3,
		},
		{
			name:      "literal mismatch",
			input:     "fd= 3",
			format:    "fd: %d",
			wantCount: 0,
			want:      -1,
		},
		{
			name:      "unsupported directive",
			input:     "3",
			format:    "%x",
			wantCount: 0,
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := -1
			count := Sscanf(tt.input, tt.format, &got)
			if count != tt.wantCount {
				t.Errorf("match count %d expected, got %d", tt.wantCount, count)
			}
			if got != tt.want {
				t.Errorf("value %d expected, got %d", tt.want, got)
			}
		})
	}
}

func TestSscanfSeveral(t *testing.T) {
	var a, b int
	var c int64 = 99
	count := Sscanf("12, -3 %  x", "%d,%d %% %d", &a, &b, &c)
	if count != 2 {
		t.Errorf("2 conversions expected, got %d", count)
	}
	if a != 12 || b != -3 {
		t.Errorf("12 and -3 expected, got %d and %d", a, b)
	}
	if c != 99 {
		t.Errorf("failed conversion must not touch its argument, got %d", c)
	}
}

func TestSscanfTargets(t *testing.T) {
	var i8 int8
	var i16 int16
	var i32 int32
	count := Sscanf("300 -40000 2147483648", "%d %d %d", &i8, &i16, &i32)
	if count != 3 {
		t.Fatalf("3 conversions expected, got %d", count)
	}
	if i8 != math.MaxInt8 || i16 != math.MinInt16 || i32 != math.MaxInt32 {
		t.Errorf("saturated values expected, got %d %d %d", i8, i16, i32)
	}

	var s string
	if count := Sscanf("5", "%d", &s); count != 0 {
		t.Errorf("unsupported target must not match, got %d", count)
	}
	if count := Sscanf("5", "%d"); count != 0 {
		t.Errorf("missing target must not match, got %d", count)
	}
	if count := Sscanf("5", "%d", (*int)(nil)); count != 0 {
		t.Errorf("nil target must not match, got %d", count)
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		input string
		value int64
		n     int
		ok    bool
	}{
		{input: "42", value: 42, n: 2, ok: true},
		{input: "  -0017 rest", value: -17, n: 7, ok: true},
		{input: "9223372036854775807", value: math.MaxInt64, n: 19, ok: true},
		{input: "9223372036854775808", value: math.MaxInt64, n: 19, ok: true},
		{input: "-9223372036854775808", value: math.MinInt64, n: 20, ok: true},
		{input: "-99999999999999999999999", value: math.MinInt64, n: 24, ok: true},
		{input: "x1", ok: false},
		{input: "+", ok: false},
	}

	for _, tt := range tests {
		value, n, ok := Decimal(tt.input)
		if value != tt.value || n != tt.n || ok != tt.ok {
			t.Errorf("%q: (%d, %d, %v) expected, got (%d, %d, %v)", tt.input, tt.value, tt.n, tt.ok, value, n, ok)
		}
	}
}
