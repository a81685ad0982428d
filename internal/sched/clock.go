package sched

import "time"

// DefaultTick длительность тика по-умолчанию, период таймера xv6.
const DefaultTick = 100 * time.Millisecond

// NewClock конструктор планировщика реального времени с данной
// длительностью тика. Неположительная длительность заменяется на DefaultTick.
func NewClock(tick time.Duration) *Clock {
	if tick <= 0 {
		tick = DefaultTick
	}

	return &Clock{
		boot: time.Now(),
		tick: tick,
	}
}

// Clock планировщик реального времени. Сроки отсчитываются по реальному
// времени, поэтому ожидание никогда не бывает короче запрошенного.
type Clock struct {
	boot time.Time
	tick time.Duration
}

// Tick длительность тика.
func (c *Clock) Tick() time.Duration {
	return c.tick
}

// Uptime для реализации Scheduler.
func (c *Clock) Uptime() Ticks {
	return Ticks(time.Since(c.boot) / c.tick)
}

// After для реализации Scheduler.
func (c *Clock) After(n Ticks) Deadline {
	return clockDeadline{at: time.Now().Add(time.Duration(n) * c.tick)}
}

// Yield для реализации Scheduler.
func (c *Clock) Yield(wake <-chan struct{}) {
	t := time.NewTimer(c.tick)
	defer t.Stop()

	select {
	case <-t.C:
	case <-wake:
	}
}

type clockDeadline struct {
	at time.Time
}

func (d clockDeadline) Expired() bool {
	return !time.Now().Before(d.at)
}

var _ Scheduler = new(Clock)
