package logging

import "fmt"

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования может делаться пользователями библиотеки, для простых
// случаев есть Std и Nop.
type Logger interface {
	// PipeCreated создан канал с данными дескрипторами концов.
	PipeCreated(pipeID fmt.Stringer, readFD, writeFD int)
	// PipeReleased закрыты оба конца канала.
	PipeReleased(pipeID fmt.Stringer, unread int)

	// SelectBlocked ни один дескриптор не готов, select уходит в ожидание.
	SelectBlocked(nfds int, timeout int64)
	// SelectExpired срок ожидания select истёк без готовых дескрипторов.
	SelectExpired(nfds int, waited int64)

	// Error ошибки, которые невозможно вернуть вызывающему.
	Error(err error)
}
