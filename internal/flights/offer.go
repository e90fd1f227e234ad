package flights

import (
	"fmt"

	"github.com/airvista/vista/internal/catalog"
)

// CabinClass is the service class of an offer or search.
type CabinClass string

const (
	CabinEconomy  CabinClass = "Economy"
	CabinBusiness CabinClass = "Business"
	CabinFirst    CabinClass = "First"
)

// Baggage holds the allowance labels shown on an offer card.
type Baggage struct {
	Cabin   string
	Checked string
}

// Offer is one synthetic bookable flight.
type Offer struct {
	ID              string
	Airline         string
	FlightNumber    string
	From            catalog.Airport
	To              catalog.Airport
	DepartureTime   string // zero-padded HH:MM
	ArrivalTime     string // zero-padded HH:MM, day rollover dropped
	Duration        string // display form, e.g. "2h 30m"
	DurationMinutes int
	Price           int
	Currency        string
	Stops           int
	StopLocations   []string
	Baggage         Baggage
	Refundable      bool
	SeatsAvailable  int
	Class           CabinClass
}

// Route renders the offer's route as "KHI → DXB".
func (o Offer) Route() string {
	return fmt.Sprintf("%s → %s", o.From.Code, o.To.Code)
}

// Direct reports whether the offer has no stops.
func (o Offer) Direct() bool {
	return o.Stops == 0
}
