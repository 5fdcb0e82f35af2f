package lock

import (
	"context"
	"sync"
	"time"

	"rab_service/internal/usecase/interfaces"
)

// MemoryLocker serializes documents inside one process. Each key maps to a
// one-slot channel; holding the lock means owning the slot.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
	wait  time.Duration
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IDocumentLocker = (*MemoryLocker)(nil)

func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*slot), wait: wait}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	s := l.acquireSlot(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
	case <-timer.C:
		l.releaseSlot(key)
		return nil, interfaces.ErrLockNotAcquired
	case <-ctx.Done():
		l.releaseSlot(key)
		return nil, interfaces.ErrLockNotAcquired
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.releaseSlot(key)
		})
	}, nil
}

func (l *MemoryLocker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

// releaseSlot drops the map entry once nobody holds or waits for the key.
func (l *MemoryLocker) releaseSlot(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
