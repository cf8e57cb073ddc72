package task

import "errors"

// ErrClosed is the panic value for store use after the owning app shut down.
var ErrClosed = errors.New("task store used after close")

// Store is what screens get to see of the task list. There is no update
// or delete: tasks are append-only.
type Store interface {
	// List returns the current snapshot in insertion order.
	List() []Task
	// Add stores d under a fresh id. The store does not validate d.
	Add(d Draft) Task
	// Subscribe registers fn to receive every new snapshot, in mutation
	// order. fn may read the store but must not mutate it. The returned
	// func removes it.
	Subscribe(fn func([]Task)) (cancel func())
}
