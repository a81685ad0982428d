package mpio

import "github.com/sirkon/errors"

// ErrNoProgress писалка повторно не записала ни одного байта и не вернула ошибку.
const ErrNoProgress errors.Const = "writer makes no progress"
