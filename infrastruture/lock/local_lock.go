package lock

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

var _ i.Locker = &LocalLocker{}

// LocalLocker serializes writers within a single process. Each key maps to a
// one-slot channel so that waiting honors ctx cancellation.
type LocalLocker struct {
	slots map[string]chan struct{}
	mu    sync.Mutex
}

// NewLocalLocker creates a LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]chan struct{}),
	}
}

// Lock acquires the lock named key.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	l.mu.Unlock()

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-slot })
	}, nil
}
