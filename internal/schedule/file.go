package schedule

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	appLog "github.com/cwarden/agenda/internal/log"
)

// FileSource serves the schedule stored in a single data file. A missing
// file means no data. A file that fails to decode leaves the previous
// snapshot in place.
type FileSource struct {
	path      string
	mu        sync.RWMutex
	data      *Data
	listeners []Listener
	watcher   *FileWatcher
}

// NewFileSource loads path once. The returned error reports a decode or
// read failure; the source is usable regardless.
func NewFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}
	data, err := s.read()
	if err != nil {
		appLog.Error("schedule load failed", err, "path", path)
		return s, err
	}
	s.data = data
	return s, nil
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Current() *Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *FileSource) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the file and notifies listeners with the result.
func (s *FileSource) Reload() error {
	data, err := s.read()
	if err != nil {
		appLog.Error("schedule reload failed", err, "path", s.path)
		return err
	}

	s.mu.Lock()
	s.data = data
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if data == nil {
		appLog.Info("schedule cleared", "path", s.path)
	} else {
		appLog.Debug("schedule reloaded", "path", s.path, "events", len(data.Events), "exams", len(data.Exams))
	}

	for _, fn := range listeners {
		fn(data)
	}
	return nil
}

func (s *FileSource) read() (*Data, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.path, err)
	}
	data, err := Decode(s.path, body)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", s.path, err)
	}
	return data, nil
}

// Watch reloads the file whenever it changes on disk.
func (s *FileSource) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	watcher, err := NewFileWatcher(func(string) {
		_ = s.Reload()
	})
	if err != nil {
		return err
	}
	if err := watcher.AddFile(s.path); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher
	return nil
}

func (s *FileSource) StopWatching() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	// Unregister first so a pending debounced change does not reload.
	err := errors.Join(s.watcher.RemoveFile(s.path), s.watcher.Close())
	s.watcher = nil
	return err
}
