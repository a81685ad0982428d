package bufmng

import "testing"

func TestFrameReuse(t *testing.T) {
	m := New(16)
	a := m.Frame()
	if len(a) != 0 || cap(a) != 16 {
		t.Fatalf("empty frame of capacity 16 expected, got len %d cap %d", len(a), cap(a))
	}

	a = append(a, "abc"...)
	b := m.Frame()
	if len(b) != 0 {
		t.Errorf("frame must be empty on every request, got %d bytes", len(b))
	}
	if &a[:1][0] != &b[:1][0] {
		t.Error("frame storage must be reused")
	}

	if New(0).Size() != DefaultFrame {
		t.Errorf("default frame %d expected", DefaultFrame)
	}
}
