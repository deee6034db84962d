package schedule

import "sync"

// Listener receives the new snapshot after every change. A nil snapshot
// means the data was cleared.
type Listener func(*Data)

// Source owns the schedule data and tells listeners when it changes.
type Source interface {
	// Current returns the latest snapshot, or nil when there is none.
	Current() *Data
	// Subscribe registers fn for every future change.
	Subscribe(fn Listener)
}

// MemorySource holds a snapshot in memory and notifies synchronously.
type MemorySource struct {
	mu        sync.RWMutex
	data      *Data
	listeners []Listener
}

func NewMemorySource(data *Data) *MemorySource {
	return &MemorySource{data: data}
}

func (s *MemorySource) Current() *Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *MemorySource) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Set replaces the snapshot and notifies every listener.
func (s *MemorySource) Set(data *Data) {
	s.mu.Lock()
	s.data = data
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(data)
	}
}

func (s *MemorySource) Clear() {
	s.Set(nil)
}
