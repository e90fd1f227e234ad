package state

import (
	"sync"

	"github.com/airvista/vista/internal/booking"
)

// BookingStore holds the in-progress checkout draft. It is a passive data
// holder: step-advance guards are computed by the checkout view from the
// data here, never enforced by the store.
type BookingStore struct {
	mu         sync.Mutex
	current    *booking.Booking
	passengers []booking.Passenger
	email      string
	phone      string
}

// NewBookingStore returns an empty draft store.
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// Start begins a draft for b with one empty passenger form per traveler.
func (s *BookingStore) Start(b booking.Booking, travelers int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := b
	s.current = &copied
	s.passengers = booking.NewPassengers(travelers)
	s.email = ""
	s.phone = ""
}

// Current returns the draft booking record, or nil when no draft exists.
func (s *BookingStore) Current() *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	copied.Passengers = clonePassengers(s.current.Passengers)
	return &copied
}

// SetContact records the checkout contact fields.
func (s *BookingStore) SetContact(email, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
	s.phone = phone
}

// Contact returns the stored contact email and phone.
func (s *BookingStore) Contact() (email, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email, s.phone
}

// Passengers returns a copy of the ordered passenger forms.
func (s *BookingStore) Passengers() []booking.Passenger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePassengers(s.passengers)
}

// SetPassenger overwrites the form at index; out-of-range is a no-op.
func (s *BookingStore) SetPassenger(index int, p booking.Passenger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.passengers) {
		return
	}
	// Position identity is fixed at checkout start.
	p.ID = s.passengers[index].ID
	s.passengers[index] = p
}

// SetPassengers replaces the whole list, as when a step submits its forms.
func (s *BookingStore) SetPassengers(passengers []booking.Passenger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passengers = clonePassengers(passengers)
}

// Finalize marks the draft confirmed and attaches the passenger list.
// Mock payment cannot fail, so there is no error path.
func (s *BookingStore) Finalize() *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	s.current.Status = booking.StatusConfirmed
	s.current.Passengers = clonePassengers(s.passengers)
	copied := *s.current
	copied.Passengers = clonePassengers(s.current.Passengers)
	return &copied
}

// Reset clears the draft entirely.
func (s *BookingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.passengers = nil
	s.email = ""
	s.phone = ""
}

func clonePassengers(passengers []booking.Passenger) []booking.Passenger {
	if len(passengers) == 0 {
		return nil
	}
	dup := make([]booking.Passenger, len(passengers))
	copy(dup, passengers)
	return dup
}
