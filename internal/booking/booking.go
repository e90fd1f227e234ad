// Package booking models the checkout flow: passenger forms, the booking
// record, and the three-step state machine guards. The stores hold the
// data; the guards here are evaluated by the checkout view before it
// advances a step.
package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/airvista/vista/internal/flights"
)

// Title is the honorific on a passenger form.
type Title string

const (
	TitleMr  Title = "Mr"
	TitleMrs Title = "Mrs"
	TitleMs  Title = "Ms"
	TitleDr  Title = "Dr"
)

// Titles lists the selectable honorifics in display order.
var Titles = []Title{TitleMr, TitleMrs, TitleMs, TitleDr}

// Passenger is one traveler's identity data. PassportNumber is optional;
// everything else is required before the passenger step may advance.
type Passenger struct {
	ID             string
	Title          Title
	FirstName      string
	LastName       string
	DateOfBirth    string
	Nationality    string
	PassportNumber string
}

// Complete reports whether all required passenger fields are filled.
func (p Passenger) Complete() bool {
	return strings.TrimSpace(p.FirstName) != "" &&
		strings.TrimSpace(p.LastName) != "" &&
		strings.TrimSpace(p.DateOfBirth) != "" &&
		strings.TrimSpace(p.Nationality) != ""
}

// NewPassengers returns count empty forms, one per traveler.
func NewPassengers(count int) []Passenger {
	passengers := make([]Passenger, count)
	for i := range passengers {
		passengers[i] = Passenger{ID: uuid.NewString(), Title: TitleMr}
	}
	return passengers
}

// Status is the lifecycle state of a booking record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is the in-progress (and, after mock payment, confirmed) record.
type Booking struct {
	ID          string
	Type        string // always "flight" in this scope
	Status      Status
	BookingDate time.Time
	TravelDate  time.Time
	TotalAmount int
	Currency    string
	Offer       flights.Offer
	Passengers  []Passenger
}

// New builds a pending flight booking for offer with travelers seats.
// Total amount is the per-person fare times the traveler count.
func New(offer flights.Offer, travelers int, travelDate time.Time) Booking {
	return Booking{
		ID:          "BK-" + uuid.NewString()[:8],
		Type:        "flight",
		Status:      StatusPending,
		BookingDate: time.Now(),
		TravelDate:  travelDate,
		TotalAmount: offer.Price * travelers,
		Currency:    offer.Currency,
		Offer:       offer,
	}
}

// Step is one stage of the checkout flow.
type Step int

const (
	StepContact Step = iota
	StepPassengers
	StepPayment
	StepDone
)

// Steps shown in the progress indicator (Done is the confirmation view).
var StepLabels = []string{"Contact", "Passengers", "Payment"}

func (s Step) String() string {
	switch s {
	case StepContact:
		return "Contact"
	case StepPassengers:
		return "Passengers"
	case StepPayment:
		return "Payment"
	case StepDone:
		return "Done"
	}
	return "Unknown"
}

// ContactComplete is the guard for Contact → Passengers.
func ContactComplete(email, phone string) bool {
	return strings.TrimSpace(email) != "" && strings.TrimSpace(phone) != ""
}

// PassengersComplete is the guard for Passengers → Payment: every form in
// the list must have its required fields filled.
func PassengersComplete(passengers []Passenger) bool {
	if len(passengers) == 0 {
		return false
	}
	for _, p := range passengers {
		if !p.Complete() {
			return false
		}
	}
	return true
}

// CanAdvance reports whether the flow may move forward from step given the
// current draft data. Payment → Done is unconditional: mock payment cannot
// fail. Backward moves are always allowed and are not guarded here.
func CanAdvance(step Step, email, phone string, passengers []Passenger) bool {
	switch step {
	case StepContact:
		return ContactComplete(email, phone)
	case StepPassengers:
		return PassengersComplete(passengers)
	case StepPayment:
		return true
	}
	return false
}
