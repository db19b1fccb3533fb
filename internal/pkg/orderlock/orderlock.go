// Package orderlock serializes mutating operations per order.
//
// Task transitions and payment application both read the order row, derive new
// state and write it back. Two workers acting on different tasks of the same
// order must not interleave that read-modify-write, or the derived status can
// go stale. The registry hands out one mutex per order id so operations on the
// same order run one at a time while operations on different orders never
// block each other.
package orderlock

import (
	"sync"

	"tailoring/internal/core/domain/model/kernel"
)

// Registry maintains one mutex per order id.
// Mutexes are created lazily on first use and kept for the registry's
// lifetime; the set of active orders in one process is small.
type Registry struct {
	locks sync.Map // kernel.UUID -> *sync.Mutex
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lock acquires the mutex for the given order, creating it if needed.
// The returned function releases the lock:
//
//	unlock := registry.Lock(orderID)
//	defer unlock()
func (r *Registry) Lock(orderID kernel.UUID) func() {
	value, _ := r.locks.LoadOrStore(orderID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
