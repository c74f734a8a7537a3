package buffer

import "sync"

// Locked serializes access to a Buffer shared between a render pass and an
// input pass. Each method holds the lock for exactly one operation.
type Locked struct {
	mu  sync.Mutex
	buf *Buffer
}

// NewLocked wraps b. A nil b is replaced with New().
func NewLocked(b *Buffer) *Locked {
	if b == nil {
		b = New()
	}
	return &Locked{buf: b}
}

func (l *Locked) Apply(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Apply(a)
}

func (l *Locked) Content() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Content()
}

func (l *Locked) CursorPosition() (row, col int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.CursorPosition()
}

// Do runs fn with exclusive access to the buffer. fn must not retain b.
func (l *Locked) Do(fn func(b *Buffer)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.buf)
}
