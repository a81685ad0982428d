package ulib

import (
	"github.com/sirkon/ulib/internal/fdset"
	"github.com/sirkon/ulib/internal/lcg"
)

// Стандартные дескрипторы.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

const (
	// EOF признак конца данных.
	EOF = -1

	// FDSetSize вместимость набора дескрипторов по-умолчанию.
	FDSetSize = fdset.DefaultCapacity

	// RandMax максимальное значение Rand.
	RandMax = lcg.Max

	// PageSize размер страницы.
	PageSize = 4096
)

// Номера сигналов.
const (
	SIGKILL = 9
	SIGALRM = 14
	SIGTERM = 15
	SIGCHLD = 20
	SIGUSR1 = 30
)

// Точки отсчёта смещения.
const (
	SeekSet = 0
	SeekCur = 1
	SeekEnd = 2
)
