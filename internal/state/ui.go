package state

import "sync"

// UIStore holds transient view flags: header scroll state, the nav menu,
// and the active modal identifier. Never persisted.
type UIStore struct {
	mu             sync.Mutex
	headerScrolled bool
	menuOpen       bool
	activeModal    string
}

// NewUIStore returns a store with all flags cleared.
func NewUIStore() *UIStore {
	return &UIStore{}
}

// SetHeaderScrolled records whether the content is scrolled past the top.
func (s *UIStore) SetHeaderScrolled(scrolled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headerScrolled = scrolled
}

// HeaderScrolled reports the header scroll flag.
func (s *UIStore) HeaderScrolled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headerScrolled
}

// SetMenuOpen records whether the navigation overlay is open.
func (s *UIStore) SetMenuOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuOpen = open
}

// MenuOpen reports the navigation overlay flag.
func (s *UIStore) MenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menuOpen
}

// SetActiveModal records the open modal's identifier; empty means none.
func (s *UIStore) SetActiveModal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = id
}

// ActiveModal returns the open modal's identifier, or empty.
func (s *UIStore) ActiveModal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeModal
}
