package task

import (
	"slices"
	"sync"
)

type observer struct {
	id int
	fn func([]Task)
}

// MemoryStore keeps tasks for the life of the process. Every mutation
// swaps in a freshly built slice; a slice once published is never written.
type MemoryStore struct {
	// notifyMu is held from publish through delivery so observers see
	// snapshots in the order they were published.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	tasks     []Task
	observers []observer
	nextObsID int
	closed    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tasks: []Task{}}
}

func (s *MemoryStore) mustOpen() {
	if s.closed {
		panic(ErrClosed)
	}
}

func (s *MemoryStore) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustOpen()

	return slices.Clone(s.tasks)
}

func (s *MemoryStore) Add(d Draft) Task {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	t, snap, fns := s.add(d)
	notify(fns, snap)
	return t
}

func (s *MemoryStore) add(d Draft) (Task, []Task, []func([]Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustOpen()

	t := d.withID(nextID(s.tasks))

	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, t)
	s.tasks = next

	return t, next, s.observerFuncs()
}

func (s *MemoryStore) Subscribe(fn func([]Task)) func() {
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

func (s *MemoryStore) observerFuncs() []func([]Task) {
	out := make([]func([]Task), 0, len(s.observers))
	for _, o := range s.observers {
		out = append(out, o.fn)
	}
	return out
}

func notify(fns []func([]Task), snap []Task) {
	for _, fn := range fns {
		fn(slices.Clone(snap))
	}
}
