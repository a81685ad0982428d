package waitq

// New конструктор пустой очереди ожидающих.
func New() *Queue {
	return &Queue{}
}

// Queue очередь зарегистрированных интересов: каждый ожидающий получает
// канал, который закрывается при ближайшем пробуждении.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе,
//          защита лежит на владельце очереди.
type Queue struct {
	waiters list[chan struct{}]
}

// Waiter ручка зарегистрированного ожидающего.
type Waiter struct {
	n *node[chan struct{}]
}

// C канал пробуждения.
func (w Waiter) C() <-chan struct{} {
	return w.n.value
}

// Register регистрация нового ожидающего.
func (q *Queue) Register() Waiter {
	return Waiter{
		n: q.waiters.push(make(chan struct{})),
	}
}

// Cancel снятие ожидающего с очереди. Для уже пробуждённых ничего не делает.
func (q *Queue) Cancel(w Waiter) {
	q.waiters.delete(w.n)
}

// WakeAll пробуждает и снимает с очереди всех ожидающих. Возвращает их количество.
func (q *Queue) WakeAll() int {
	var count int
	for n := q.waiters.first; n != nil; n = q.waiters.first {
		close(n.value)
		q.waiters.delete(n)
		count++
	}

	return count
}

// Len количество ожидающих в очереди.
func (q *Queue) Len() int {
	return q.waiters.size
}
