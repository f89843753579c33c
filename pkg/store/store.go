// Package store keeps the finished-story collection: an ordered list, newest
// first, persisted as a JSON file. The orchestrator never writes here; the
// HTTP layer appends after a create.
package store

import (
	"errors"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"fable/pkg/story"
	"fable/pkg/utils"
)

type Stories struct {
	mu    sync.RWMutex
	path  string
	items []story.Story
}

// Open loads the collection at path, starting empty when the file does not
// exist yet.
func Open(path string) *Stories {
	s := &Stories{path: path}

	items, err := utils.Load[[]story.Story](path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("failed to load story collection, starting empty", "path", path, "error", err)
		}
		return s
	}
	s.items = items
	log.Info("loaded story collection", "path", path, "stories", len(items))
	return s
}

// Add prepends a story; the collection is newest first.
func (s *Stories) Add(st story.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]story.Story{st}, s.items...)
}

func (s *Stories) List() []story.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]story.Story, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks a story up by its id, the sole stable handle.
func (s *Stories) Get(id string) (story.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.items {
		if st.ID == id {
			return st, true
		}
	}
	return story.Story{}, false
}

func (s *Stories) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Reset drops every story. Deletion is full-store only; individual stories
// are immutable.
func (s *Stories) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Save writes the collection back to disk.
func (s *Stories) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.Save(s.path, s.items)
}
