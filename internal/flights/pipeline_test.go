package flights

import (
	"testing"
)

func sampleOffers() []Offer {
	return []Offer{
		{ID: "A", Airline: "Emirates", Price: 45000, Stops: 0, Refundable: true,
			DepartureTime: "03:45", ArrivalTime: "05:15", Duration: "2h 30m", DurationMinutes: 150,
			Baggage: Baggage{Cabin: "7 kg", Checked: "30 kg"}},
		{ID: "B", Airline: "PIA", Price: 32000, Stops: 0, Refundable: false,
			DepartureTime: "08:30", ArrivalTime: "11:00", Duration: "2h 30m", DurationMinutes: 150,
			Baggage: Baggage{Cabin: "7 kg", Checked: "20 kg"}},
		{ID: "C", Airline: "Qatar Airways", Price: 52000, Stops: 1, Refundable: true,
			DepartureTime: "14:20", ArrivalTime: "18:45", Duration: "4h 25m", DurationMinutes: 265,
			Baggage: Baggage{Cabin: "7 kg", Checked: "30 kg"}},
		{ID: "D", Airline: "Flydubai", Price: 28000, Stops: 0, Refundable: false,
			DepartureTime: "19:15", ArrivalTime: "21:45", Duration: "2h 30m", DurationMinutes: 150,
			Baggage: Baggage{Cabin: "7 kg", Checked: "15 kg"}},
		{ID: "E", Airline: "Air Arabia", Price: 25000, Stops: 1, Refundable: false,
			DepartureTime: "11:30", ArrivalTime: "16:00", Duration: "4h 30m", DurationMinutes: 270,
			Baggage: Baggage{Cabin: "7 kg", Checked: "23 kg"}},
	}
}

func ids(offers []Offer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestApply_Filters(t *testing.T) {
	cases := []struct {
		name    string
		filters FilterState
		want    []string // ids in price order
	}{
		{"none", DefaultFilters(), []string{"E", "D", "B", "A", "C"}},
		{"direct_only", func() FilterState { f := DefaultFilters(); f.DirectOnly = true; return f }(),
			[]string{"D", "B", "A"}},
		{"refundable_only", func() FilterState { f := DefaultFilters(); f.RefundableOnly = true; return f }(),
			[]string{"A", "C"}},
		{"with_baggage", func() FilterState { f := DefaultFilters(); f.WithBaggage = true; return f }(),
			[]string{"E", "B", "A", "C"}},
		{"airlines", func() FilterState {
			f := DefaultFilters()
			f.Airlines = []string{"PIA", "Emirates"}
			return f
		}(), []string{"B", "A"}},
		{"price_range_inclusive", func() FilterState {
			f := DefaultFilters()
			f.PriceRange = [2]int{28000, 45000}
			return f
		}(), []string{"D", "B", "A"}},
		{"conjunctive", func() FilterState {
			f := DefaultFilters()
			f.DirectOnly = true
			f.WithBaggage = true
			return f
		}(), []string{"B", "A"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(sampleOffers(), tc.filters, SortPrice))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestApply_ResultIsSubsetAndIdempotent(t *testing.T) {
	offers := sampleOffers()
	filters := DefaultFilters()
	filters.DirectOnly = true
	filters.WithBaggage = true

	once := Apply(offers, filters, SortPrice)
	byID := map[string]bool{}
	for _, o := range offers {
		byID[o.ID] = true
	}
	for _, o := range once {
		if !byID[o.ID] {
			t.Fatalf("filtered result contains %q, not in input", o.ID)
		}
	}

	twice := Apply(once, filters, SortPrice)
	if len(twice) != len(once) {
		t.Fatalf("re-applying filter removed elements: %d -> %d", len(once), len(twice))
	}
}

func TestApply_SortKeys(t *testing.T) {
	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortPrice, []string{"E", "D", "B", "A", "C"}},
		{SortDuration, []string{"A", "B", "D", "C", "E"}},
		{SortDeparture, []string{"A", "B", "E", "C", "D"}},
		{SortArrival, []string{"A", "B", "E", "C", "D"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			got := ids(Apply(sampleOffers(), DefaultFilters(), tc.key))
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("sort %s: got %v, want %v", tc.key, got, tc.want)
				}
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	offers := sampleOffers()
	Apply(offers, DefaultFilters(), SortDeparture)
	if offers[0].ID != "A" || offers[4].ID != "E" {
		t.Fatalf("Apply reordered its input: %v", ids(offers))
	}
}

func TestResetFiltersRestoresFullList(t *testing.T) {
	offers := sampleOffers()
	filters := FilterState{DirectOnly: true, RefundableOnly: true, Airlines: []string{"PIA"}, PriceRange: [2]int{0, 30000}}
	if got := Apply(offers, filters, SortPrice); len(got) != 0 {
		t.Fatalf("expected heavy filter to drop everything, got %v", ids(got))
	}
	if got := Apply(offers, DefaultFilters(), SortPrice); len(got) != len(offers) {
		t.Fatalf("default filters dropped offers: got %d, want %d", len(got), len(offers))
	}
}

func TestToggleAirline(t *testing.T) {
	f := DefaultFilters()
	f = f.ToggleAirline("PIA")
	if !f.HasAirline("PIA") {
		t.Fatal("toggle on failed")
	}
	f = f.ToggleAirline("Emirates")
	f = f.ToggleAirline("PIA")
	if f.HasAirline("PIA") || !f.HasAirline("Emirates") {
		t.Fatalf("toggle off failed: %v", f.Airlines)
	}
	if f.ToggleAirline("Emirates").Active() {
		t.Fatal("clearing last airline should deactivate filter set")
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30 kg", 30},
		{"23 kg", 23},
		{" 20 kg", 20},
		{"kg", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := leadingInt(tc.in); got != tc.want {
			t.Fatalf("leadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
