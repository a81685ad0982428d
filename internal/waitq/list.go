package waitq

// list двусвязный список.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type list[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T any] struct {
	prev *node[T]
	next *node[T]

	value    T
	attached bool
}

// push добавление нового значения в конец списка с возвратом созданного узла.
func (l *list[T]) push(v T) *node[T] {
	n := &node[T]{
		prev:     l.last,
		value:    v,
		attached: true,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// delete удаление узла из списка, повторное удаление ничего не делает.
func (l *list[T]) delete(n *node[T]) {
	if !n.attached {
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.first == n {
		l.first = n.next
	}
	if l.last == n {
		l.last = n.prev
	}

	n.prev = nil
	n.next = nil
	n.attached = false
	l.size--
}
