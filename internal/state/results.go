package state

import (
	"sync"

	"github.com/airvista/vista/internal/flights"
)

// ResultsStore holds the most recent generated offer list, the active
// filter/sort selection, and the offer picked for checkout.
type ResultsStore struct {
	mu       sync.RWMutex
	offers   []flights.Offer
	filters  flights.FilterState
	sortKey  flights.SortKey
	selected *flights.Offer
}

// NewResultsStore returns a store with no results and default filters.
func NewResultsStore() *ResultsStore {
	return &ResultsStore{
		filters: flights.DefaultFilters(),
		sortKey: flights.SortPrice,
	}
}

// SetOffers replaces the stored list wholesale.
func (s *ResultsStore) SetOffers(offers []flights.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = cloneOffers(offers)
}

// Offers returns a copy of the raw generated list.
func (s *ResultsStore) Offers() []flights.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOffers(s.offers)
}

// Visible recomputes the filtered, sorted view of the stored list. The
// derived view is never cached; every call reflects the current state.
func (s *ResultsStore) Visible() []flights.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flights.Apply(s.offers, s.filters, s.sortKey)
}

// Filters returns the active filter state.
func (s *ResultsStore) Filters() flights.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the active filter state.
func (s *ResultsStore) SetFilters(filters flights.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// ResetFilters restores the no-filter defaults and the price sort.
func (s *ResultsStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = flights.DefaultFilters()
	s.sortKey = flights.SortPrice
}

// SortKey returns the active sort key.
func (s *ResultsStore) SortKey() flights.SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortKey
}

// SetSortKey selects the comparator for the derived view.
func (s *ResultsStore) SetSortKey(key flights.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// Select records the full offer record chosen for checkout; confirmation
// surfaces need the denormalized fields, not just an id.
func (s *ResultsStore) Select(offer flights.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := offer
	s.selected = &copied
}

// ClearSelection drops the checkout target.
func (s *ResultsStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected returns the offer chosen for checkout, or nil.
func (s *ResultsStore) Selected() *flights.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	copied := *s.selected
	return &copied
}

func cloneOffers(offers []flights.Offer) []flights.Offer {
	if len(offers) == 0 {
		return nil
	}
	dup := make([]flights.Offer, len(offers))
	copy(dup, offers)
	return dup
}
