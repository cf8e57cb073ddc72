package reward

import (
	"slices"
	"sync"
)

type observer struct {
	id int
	fn func([]Reward)
}

// MemoryStore keeps rewards for the life of the process. Mutations build
// a new sorted slice and swap it in; published slices are never written.
type MemoryStore struct {
	// notifyMu is held from publish through delivery so observers see
	// snapshots in the order they were published.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	rewards   []Reward
	observers []observer
	nextObsID int
	closed    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rewards: []Reward{}}
}

func (s *MemoryStore) mustOpen() {
	if s.closed {
		panic(ErrClosed)
	}
}

func (s *MemoryStore) List() []Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustOpen()

	return slices.Clone(s.rewards)
}

func (s *MemoryStore) Get(id int) (Reward, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustOpen()

	i := slices.IndexFunc(s.rewards, func(r Reward) bool { return r.ID == id })
	if i < 0 {
		return Reward{}, false
	}
	return s.rewards[i], true
}

func (s *MemoryStore) Add(d Draft) Reward {
	var created Reward
	s.mutate(func(cur []Reward) []Reward {
		created = d.withID(nextID(cur))
		return append(cur, created)
	})
	return created
}

func (s *MemoryStore) Update(id int, d Draft) bool {
	var found bool
	s.mutate(func(cur []Reward) []Reward {
		for i := range cur {
			if cur[i].ID == id {
				cur[i] = d.withID(id)
				found = true
			}
		}
		return cur
	})
	return found
}

func (s *MemoryStore) Remove(id int) bool {
	var found bool
	s.mutate(func(cur []Reward) []Reward {
		n := len(cur)
		cur = slices.DeleteFunc(cur, func(r Reward) bool { return r.ID == id })
		found = len(cur) < n
		return cur
	})
	return found
}

// mutate hands fn a private copy of the current rewards, sorts and
// publishes what fn returns, then notifies observers outside the lock.
func (s *MemoryStore) mutate(fn func([]Reward) []Reward) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	next, fns := s.swap(fn)
	for _, obs := range fns {
		obs(slices.Clone(next))
	}
}

func (s *MemoryStore) swap(fn func([]Reward) []Reward) ([]Reward, []func([]Reward)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustOpen()

	next := fn(slices.Clone(s.rewards))
	sortByStars(next)
	s.rewards = next

	fns := make([]func([]Reward), 0, len(s.observers))
	for _, o := range s.observers {
		fns = append(fns, o.fn)
	}
	return next, fns
}

func (s *MemoryStore) Subscribe(fn func([]Reward)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustOpen()

	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// Close ends the store's lifetime. Later calls panic with ErrClosed.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.observers = nil
}
