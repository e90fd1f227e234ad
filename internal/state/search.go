package state

import (
	"sync"
	"time"

	"github.com/airvista/vista/internal/flights"
)

// TripType is the itinerary shape of a search.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

// TripTypes lists the selectable itinerary shapes in display order.
var TripTypes = []TripType{TripOneWay, TripRoundTrip, TripMultiCity}

const (
	// MinTravelers and MaxTravelers bound the traveler count.
	MinTravelers = 1
	MaxTravelers = 9
)

// Criteria is the user's current trip query. Origin == destination is not
// rejected here; the search form is responsible for what it lets through.
type Criteria struct {
	From          string // origin airport code
	To            string // destination airport code
	DepartureDate time.Time
	ReturnDate    time.Time // zero for one-way
	Travelers     int
	Class         flights.CabinClass
	TripType      TripType
}

// Ready reports whether the criteria are complete enough to search:
// origin, destination, and departure date must all be set.
func (c Criteria) Ready() bool {
	return c.From != "" && c.To != "" && !c.DepartureDate.IsZero()
}

// SearchStore holds the current search criteria.
type SearchStore struct {
	mu       sync.Mutex
	criteria Criteria
}

// NewSearchStore returns a store with the default criteria: one traveler,
// economy, round-trip, no route.
func NewSearchStore() *SearchStore {
	return &SearchStore{criteria: Criteria{
		Travelers: MinTravelers,
		Class:     flights.CabinEconomy,
		TripType:  TripRoundTrip,
	}}
}

// Criteria returns a copy of the current criteria.
func (s *SearchStore) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetFrom sets the origin airport code.
func (s *SearchStore) SetFrom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.From = code
}

// SetTo sets the destination airport code.
func (s *SearchStore) SetTo(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.To = code
}

// SetDepartureDate sets the outbound date.
func (s *SearchStore) SetDepartureDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.DepartureDate = date
}

// SetReturnDate sets the inbound date; zero clears it.
func (s *SearchStore) SetReturnDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.ReturnDate = date
}

// SetTravelers sets the traveler count, clamped to [MinTravelers, MaxTravelers].
func (s *SearchStore) SetTravelers(count int) {
	if count < MinTravelers {
		count = MinTravelers
	}
	if count > MaxTravelers {
		count = MaxTravelers
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Travelers = count
}

// SetClass sets the cabin class.
func (s *SearchStore) SetClass(class flights.CabinClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Class = class
}

// SetTripType sets the itinerary shape.
func (s *SearchStore) SetTripType(t TripType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.TripType = t
}

// SwapLocations exchanges origin and destination as a single transition;
// no reader can observe one field swapped and not the other.
func (s *SearchStore) SwapLocations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.From, s.criteria.To = s.criteria.To, s.criteria.From
}
