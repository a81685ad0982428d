package bufmng

// New конструктор управления буфером с данным размером кадра.
func New(frame int) *BufferManager {
	if frame <= 0 {
		frame = DefaultFrame
	}

	return &BufferManager{frame: frame}
}

// DefaultFrame размер кадра по-умолчанию.
const DefaultFrame = 128

// BufferManager переиспользуемый буфер для порционной записи.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type BufferManager struct {
	buf   []byte
	frame int
}

// Frame выдать пустой буфер вместимостью в один кадр.
func (b *BufferManager) Frame() []byte {
	if cap(b.buf) < b.frame {
		b.buf = make([]byte, 0, b.frame)
	}

	return b.buf[:0]
}

// Size размер кадра.
func (b *BufferManager) Size() int {
	return b.frame
}
