package i

import "context"

// Locker serializes writers of a shared resource, possibly across processes.
type Locker interface {
	// Lock blocks until the lock named key is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
