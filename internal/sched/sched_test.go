package sched

import (
	"testing"
	"time"
)

func TestManualSleep(t *testing.T) {
	m := NewManual()
	m.Advance(5)

	Sleep(m, 10)
	if m.Uptime() != 15 {
		t.Errorf("uptime 15 expected after sleeping 10 ticks, got %d", m.Uptime())
	}
	if m.Yields() != 10 {
		t.Errorf("10 yields expected, got %d", m.Yields())
	}

	Sleep(m, 0)
	Sleep(m, -3)
	if m.Yields() != 10 {
		t.Errorf("non-positive sleep must not yield, got %d yields", m.Yields())
	}
}

func TestManualDeadline(t *testing.T) {
	m := NewManual()
	d := m.After(2)
	if d.Expired() {
		t.Fatal("fresh deadline must not be expired")
	}
	m.Yield(nil)
	if d.Expired() {
		t.Fatal("deadline must not be expired after one tick")
	}
	m.Yield(nil)
	if !d.Expired() {
		t.Fatal("deadline must be expired after two ticks")
	}
}

func TestClockSleepNeverShorter(t *testing.T) {
	const tick = 2 * time.Millisecond

	c := NewClock(tick)
	start := time.Now()
	Sleep(c, 5)
	if elapsed := time.Since(start); elapsed < 5*tick {
		t.Errorf("sleep of 5 ticks took only %s", elapsed)
	}
}

func TestClockYieldWake(t *testing.T) {
	c := NewClock(time.Hour)
	wake := make(chan struct{})
	close(wake)

	done := make(chan struct{})
	go func() {
		c.Yield(wake)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("yield must return as soon as wake is closed")
	}
}

func TestClockDefaultTick(t *testing.T) {
	if c := NewClock(0); c.Tick() != DefaultTick {
		t.Errorf("default tick %s expected, got %s", DefaultTick, c.Tick())
	}
}
