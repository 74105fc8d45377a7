package deck

import "sync"

// Seed is the initial state for one deck: its path and raw CSV content.
// The title is always derived from the path.
type Seed struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Store is a thread-safe in-memory deck store. Descriptors keep insertion
// order; content is keyed by descriptor path.
type Store struct {
	mu          sync.RWMutex
	descriptors []Descriptor
	content     map[string]string
	seeds       []Seed
}

// NewStore creates a Store populated from the given seeds.
func NewStore(seeds []Seed) *Store {
	s := &Store{seeds: seeds}
	s.load()
	return s
}

// load replaces the store state with the seed state. Caller must not hold mu.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.descriptors = make([]Descriptor, 0, len(s.seeds))
	s.content = make(map[string]string, len(s.seeds))
	for _, seed := range s.seeds {
		s.descriptors = append(s.descriptors, Descriptor{
			Path:  seed.Path,
			Title: TitleFromPath(seed.Path),
		})
		s.content[seed.Path] = seed.Content
	}
}

// List returns all descriptors in insertion order.
func (s *Store) List() []Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Content returns the stored content for path, if any.
func (s *Store) Content(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.content[path]
	return content, ok
}

// Count returns the number of decks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.descriptors)
}

// Save stores content under path, overwriting any prior content. If no
// descriptor exists for path, a new one is appended with a derived title.
// Returns true when a new deck was created.
func (s *Store) Save(path, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content[path] = content
	for _, d := range s.descriptors {
		if d.Path == path {
			return false
		}
	}
	s.descriptors = append(s.descriptors, Descriptor{
		Path:  path,
		Title: TitleFromPath(path),
	})
	return true
}

// Rename moves the deck at from to to. The descriptor keeps its position in
// the listing; content, if present under from, moves to to. Returns
// *NotFoundError when no descriptor has path from and *ConflictError when one
// already has path to.
func (s *Store) Rename(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.descriptors {
		if d.Path == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Path: from}
	}
	for _, d := range s.descriptors {
		if d.Path == to {
			return &ConflictError{Path: to}
		}
	}

	s.descriptors[idx] = Descriptor{Path: to, Title: TitleFromPath(to)}
	if content, ok := s.content[from]; ok {
		delete(s.content, from)
		s.content[to] = content
	}
	return nil
}

// Reset restores the store to its seed state.
func (s *Store) Reset() {
	s.load()
}
