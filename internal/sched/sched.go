package sched

// Ticks время в тиках планировщика.
type Ticks int64

// Scheduler поставщик времени и кооперативной уступки процессора.
type Scheduler interface {
	// Uptime количество тиков от старта.
	Uptime() Ticks

	// After срок, наступающий через n тиков от текущего момента.
	After(n Ticks) Deadline

	// Yield приостанавливает вызывающего не более чем на один квант.
	// Возврат происходит раньше, если wake закрыт или получил значение.
	// Nil wake означает ожидание только кванта.
	Yield(wake <-chan struct{})
}

// Deadline срок ожидания.
type Deadline interface {
	Expired() bool
}

// Sleep ожидание в течение n тиков. Неположительные n приводят к
// немедленному возврату.
func Sleep(s Scheduler, n Ticks) {
	if n <= 0 {
		return
	}

	d := s.After(n)
	for !d.Expired() {
		s.Yield(nil)
	}
}
