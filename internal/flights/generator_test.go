package flights

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/airvista/vista/internal/catalog"
)

var (
	testFrom = catalog.Airport{Code: "KHI", City: "Karachi", Country: "Pakistan"}
	testTo   = catalog.Airport{Code: "DXB", City: "Dubai", Country: "UAE"}
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), "PKR")
}

func TestGenerate_CountAndPriceOrder(t *testing.T) {
	offers := seededGenerator(1).Generate(testFrom, testTo, time.Now())

	if len(offers) != OffersPerSearch {
		t.Fatalf("len(offers) = %d, want %d", len(offers), OffersPerSearch)
	}
	for i := 1; i < len(offers); i++ {
		if offers[i].Price < offers[i-1].Price {
			t.Fatalf("offers not sorted by price: %d before %d", offers[i-1].Price, offers[i].Price)
		}
	}
}

func TestGenerate_PriceBounds(t *testing.T) {
	// base in [200,500) plus jitter [0,200) plus at most 2 stops * 50.
	const minPrice, maxPrice = 200, 798

	for seed := int64(0); seed < 20; seed++ {
		for _, o := range seededGenerator(seed).Generate(testFrom, testTo, time.Now()) {
			if o.Price < minPrice || o.Price > maxPrice {
				t.Fatalf("seed %d: price %d outside [%d, %d]", seed, o.Price, minPrice, maxPrice)
			}
		}
	}
}

func TestGenerate_StructuralProperties(t *testing.T) {
	timeRe := regexp.MustCompile(`^\d{2}:\d{2}$`)
	flightRe := regexp.MustCompile(`^[A-Z]{2}\d{3}$`)

	for _, o := range seededGenerator(7).Generate(testFrom, testTo, time.Now()) {
		if o.From.Code != "KHI" || o.To.Code != "DXB" {
			t.Fatalf("route = %s, want KHI → DXB", o.Route())
		}
		if !timeRe.MatchString(o.DepartureTime) || !timeRe.MatchString(o.ArrivalTime) {
			t.Fatalf("times not zero-padded HH:MM: %q / %q", o.DepartureTime, o.ArrivalTime)
		}
		if !flightRe.MatchString(o.FlightNumber) {
			t.Fatalf("flight number = %q, want two letters + three digits", o.FlightNumber)
		}
		if o.DurationMinutes < 2*60 || o.DurationMinutes > 9*60+59 {
			t.Fatalf("duration %d minutes outside 2h..9h59m", o.DurationMinutes)
		}
		if o.Stops < 0 || o.Stops > 2 {
			t.Fatalf("stops = %d, want 0..2", o.Stops)
		}
		if o.Stops == 0 {
			if len(o.StopLocations) != 0 || o.Baggage.Checked != "30 kg" {
				t.Fatalf("direct offer has stops metadata: %+v", o)
			}
		} else {
			if len(o.StopLocations) == 0 || o.Baggage.Checked != "23 kg" {
				t.Fatalf("connecting offer missing downgrade: %+v", o)
			}
		}
		if o.SeatsAvailable < 1 || o.SeatsAvailable > 20 {
			t.Fatalf("seats = %d, want 1..20", o.SeatsAvailable)
		}
		if o.Currency != "PKR" || o.Class != CabinEconomy {
			t.Fatalf("offer tagging wrong: currency %q class %q", o.Currency, o.Class)
		}
		if catalog.AirlineByName(o.Airline) == nil {
			t.Fatalf("airline %q not in catalog", o.Airline)
		}
	}
}

func TestGenerate_SeededSourceIsReproducible(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	a := seededGenerator(42)
	b := seededGenerator(42)
	a.now = func() time.Time { return now }
	b.now = func() time.Time { return now }

	got := a.Generate(testFrom, testTo, now)
	want := b.Generate(testFrom, testTo, now)
	if len(got) != len(want) {
		t.Fatalf("lengths differ: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i].ID != want[i].ID || got[i].Price != want[i].Price ||
			got[i].Airline != want[i].Airline || got[i].DepartureTime != want[i].DepartureTime {
			t.Fatalf("offer %d differs between identically seeded generators:\n%+v\n%+v", i, got[i], want[i])
		}
	}
}
