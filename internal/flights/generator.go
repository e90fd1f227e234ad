package flights

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/airvista/vista/internal/catalog"
)

const (
	// OffersPerSearch is the fixed result count per generated search.
	OffersPerSearch = 15

	basePriceMin   = 200
	basePriceRange = 300
	priceJitter    = 200
	stopSurcharge  = 50
)

// Generator synthesizes flight offers for a route. The random source is
// injected so tests can seed it and assert exact output.
type Generator struct {
	rng      *rand.Rand
	currency string
	now      func() time.Time
}

// NewGenerator builds a generator around rng. A nil rng gets a time-seeded
// source. Currency tags every produced offer.
func NewGenerator(rng *rand.Rand, currency string) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if currency == "" {
		currency = "PKR"
	}
	return &Generator{rng: rng, currency: currency, now: time.Now}
}

// Generate produces OffersPerSearch offers for the route, sorted ascending
// by price. The date only feeds offer IDs; schedules are random either way.
func (g *Generator) Generate(from, to catalog.Airport, date time.Time) []Offer {
	basePrice := basePriceMin + g.rng.Intn(basePriceRange)
	stamp := g.now().UnixMilli()

	offers := make([]Offer, 0, OffersPerSearch)
	for i := 0; i < OffersPerSearch; i++ {
		airline := catalog.Airlines[g.rng.Intn(len(catalog.Airlines))]

		depHour := g.rng.Intn(24)
		depMinute := g.rng.Intn(60)
		durHours := 2 + g.rng.Intn(8)
		durMinutes := g.rng.Intn(60)

		// Arrival wraps at midnight; the extra day is not tracked.
		arrHour := (depHour + durHours) % 24
		arrMinute := (depMinute + durMinutes) % 60

		stops := g.pickStops()
		price := basePrice + g.rng.Intn(priceJitter) + stops*stopSurcharge

		var stopLocations []string
		checked := "30 kg"
		if stops > 0 {
			stopLocations = []string{"DXB"}
			checked = "23 kg"
		}

		offers = append(offers, Offer{
			ID:              fmt.Sprintf("FL%d%d", stamp, i),
			Airline:         airline.Name,
			FlightNumber:    flightNumber(g.rng, airline.Name),
			From:            from,
			To:              to,
			DepartureTime:   fmt.Sprintf("%02d:%02d", depHour, depMinute),
			ArrivalTime:     fmt.Sprintf("%02d:%02d", arrHour, arrMinute),
			Duration:        fmt.Sprintf("%dh %dm", durHours, durMinutes),
			DurationMinutes: durHours*60 + durMinutes,
			Price:           price,
			Currency:        g.currency,
			Stops:           stops,
			StopLocations:   stopLocations,
			Baggage:         Baggage{Cabin: "7 kg", Checked: checked},
			Refundable:      g.rng.Intn(2) == 0,
			SeatsAvailable:  1 + g.rng.Intn(20),
			Class:           CabinEconomy,
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
	return offers
}

// pickStops draws the stop count: direct with probability 0.4, otherwise
// one stop with half the remainder, else two.
func (g *Generator) pickStops() int {
	if g.rng.Float64() > 0.6 {
		return 0
	}
	if g.rng.Float64() > 0.5 {
		return 1
	}
	return 2
}

func flightNumber(rng *rand.Rand, airline string) string {
	prefix := strings.ToUpper(airline)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("%s%d", prefix, 100+rng.Intn(900))
}
