package schedule

import (
	"errors"
	"strconv"
	"sync"
)

// CompositeSource combines multiple Sources into one snapshot.
type CompositeSource struct {
	sources   []Source
	mu        sync.RWMutex
	listeners []Listener
}

// NewCompositeSource creates a composite over sources and subscribes to
// each of them.
func NewCompositeSource(sources ...Source) *CompositeSource {
	c := &CompositeSource{sources: sources}
	for _, src := range sources {
		src.Subscribe(c.changed)
	}
	return c
}

// Current concatenates member snapshots in source order. Duplicate
// kind/id pairs keep their first occurrence. It returns nil when no
// member has data.
func (c *CompositeSource) Current() *Data {
	var merged *Data
	seen := make(map[string]struct{})

	for _, src := range c.sources {
		data := src.Current()
		if data == nil {
			continue
		}
		if merged == nil {
			merged = &Data{}
		}

		for _, ev := range data.Events {
			key := FromEvent(ev).Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged.Events = append(merged.Events, ev)
		}
		for _, exam := range data.Exams {
			key := string(KindExam) + "/" + strconv.Itoa(exam.ID)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged.Exams = append(merged.Exams, exam)
		}
	}

	return merged
}

func (c *CompositeSource) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *CompositeSource) changed(*Data) {
	c.mu.RLock()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.RUnlock()

	data := c.Current()
	for _, fn := range listeners {
		fn(data)
	}
}

// Reload asks every member that can reload to do so.
func (c *CompositeSource) Reload() error {
	var errs []error
	for _, src := range c.sources {
		if r, ok := src.(interface{ Reload() error }); ok {
			if err := r.Reload(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
