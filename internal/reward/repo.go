package reward

import "errors"

// ErrClosed is the panic value for store use after the owning app shut down.
var ErrClosed = errors.New("reward store used after close")

// Store holds the rewards, always sorted ascending by stars.
type Store interface {
	List() []Reward
	// Get returns the reward with id, if present.
	Get(id int) (Reward, bool)
	Add(d Draft) Reward
	// Update replaces the fields of reward id and reports whether it was
	// there. Unknown ids are ignored.
	Update(id int, d Draft) bool
	// Remove deletes reward id and reports whether it was there. Unknown
	// ids are ignored.
	Remove(id int) bool
	// Subscribe registers fn for every later mutation. Snapshots arrive in
	// mutation order. fn may read the store but must not mutate it.
	Subscribe(fn func([]Reward)) (cancel func())
}
