package sched

import "sync/atomic"

// NewManual конструктор детерминированного планировщика.
func NewManual() *Manual {
	return &Manual{}
}

// Manual детерминированный планировщик: каждый Yield продвигает время
// ровно на один тик, сигналы пробуждения игнорируются.
type Manual struct {
	now    atomic.Int64
	yields atomic.Int64
}

// Uptime для реализации Scheduler.
func (m *Manual) Uptime() Ticks {
	return Ticks(m.now.Load())
}

// After для реализации Scheduler.
func (m *Manual) After(n Ticks) Deadline {
	return manualDeadline{
		m:  m,
		at: m.Uptime() + n,
	}
}

// Yield для реализации Scheduler.
func (m *Manual) Yield(<-chan struct{}) {
	m.yields.Add(1)
	m.now.Add(1)
}

// Advance продвигает время на n тиков.
func (m *Manual) Advance(n Ticks) {
	m.now.Add(int64(n))
}

// Yields количество сделанных уступок.
func (m *Manual) Yields() int64 {
	return m.yields.Load()
}

type manualDeadline struct {
	m  *Manual
	at Ticks
}

func (d manualDeadline) Expired() bool {
	return d.m.Uptime() >= d.at
}

var _ Scheduler = new(Manual)
