package ui

import "sync"

// StatusBuffer holds the most recent notify message. The controller and the
// file watcher may notify from their own goroutines, so access is locked.
type StatusBuffer struct {
	mu  sync.Mutex
	msg string
}

// Set stores a status message.
func (s *StatusBuffer) Set(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Get returns the current status message.
func (s *StatusBuffer) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}
