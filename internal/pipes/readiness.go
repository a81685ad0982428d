package pipes

// Readable готовность дескриптора к чтению без блокировки.
func (t *Table) Readable(fd int) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return false, err
	}

	return f.readable(), nil
}

// Writable готовность дескриптора к записи без блокировки.
func (t *Table) Writable(fd int) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return false, err
	}

	return f.writable(), nil
}

// Exceptional наличие исключительного состояния: противоположный конец
// канала закрыт.
func (t *Table) Exceptional(fd int) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, err := t.get(fd)
	if err != nil {
		return false, err
	}

	return f.exceptional(), nil
}

// Subscribe регистрация интереса к изменению состояния таблицы. Канал
// закрывается при ближайшем изменении, cancel снимает регистрацию.
func (t *Table) Subscribe() (wake <-chan struct{}, cancel func()) {
	t.lock.Lock()
	w := t.waiters.Register()
	t.lock.Unlock()

	return w.C(), func() {
		t.lock.Lock()
		t.waiters.Cancel(w)
		t.lock.Unlock()
	}
}
