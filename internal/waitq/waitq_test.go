package waitq

import "testing"

func TestQueueWakeAll(t *testing.T) {
	q := New()
	a := q.Register()
	b := q.Register()
	c := q.Register()

	q.Cancel(b)
	if q.Len() != 2 {
		t.Fatalf("2 waiters expected after cancel, got %d", q.Len())
	}

	if n := q.WakeAll(); n != 2 {
		t.Fatalf("2 woken waiters expected, got %d", n)
	}

	for name, w := range map[string]Waiter{"a": a, "c": c} {
		select {
		case <-w.C():
		default:
			t.Errorf("waiter %s must be woken", name)
		}
	}

	select {
	case <-b.C():
		t.Error("cancelled waiter must not be woken")
	default:
	}

	// Снятие уже пробуждённого ожидающего безопасно.
	q.Cancel(a)
	q.Cancel(b)
	if q.Len() != 0 {
		t.Errorf("empty queue expected, got %d", q.Len())
	}
}

func TestQueueCancelMiddleKeepsOrder(t *testing.T) {
	q := New()
	ws := make([]Waiter, 5)
	for i := range ws {
		ws[i] = q.Register()
	}

	q.Cancel(ws[0])
	q.Cancel(ws[4])
	q.Cancel(ws[2])

	var got []*node[chan struct{}]
	for n := q.waiters.first; n != nil; n = n.next {
		got = append(got, n)
	}
	if len(got) != 2 || got[0] != ws[1].n || got[1] != ws[3].n {
		t.Errorf("waiters 1 and 3 expected to remain in order")
	}
	if q.waiters.last != ws[3].n {
		t.Error("last waiter must be 3")
	}
}
