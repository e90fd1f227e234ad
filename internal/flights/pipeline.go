package flights

import (
	"sort"
	"strconv"
	"strings"
)

// SortKey selects the comparator for the results pipeline.
type SortKey string

const (
	SortPrice     SortKey = "price"
	SortDuration  SortKey = "duration"
	SortDeparture SortKey = "departure"
	SortArrival   SortKey = "arrival"
)

// SortKeys lists the selectable sort orders in display order.
var SortKeys = []SortKey{SortPrice, SortDuration, SortDeparture, SortArrival}

// Label returns the human form shown in the sort control.
func (k SortKey) Label() string {
	switch k {
	case SortDuration:
		return "Duration (Shortest)"
	case SortDeparture:
		return "Departure (Earliest)"
	case SortArrival:
		return "Arrival (Earliest)"
	default:
		return "Price (Lowest)"
	}
}

// Checked baggage at or above this many kilograms counts as "with baggage".
const baggageThresholdKg = 20

// DefaultPriceRange is the unfiltered [min, max] price window.
var DefaultPriceRange = [2]int{0, 500000}

// FilterState is the active filter selection over a result list.
// Predicates apply conjunctively.
type FilterState struct {
	DirectOnly     bool
	RefundableOnly bool
	WithBaggage    bool
	Airlines       []string
	PriceRange     [2]int
}

// DefaultFilters returns the no-filter state.
func DefaultFilters() FilterState {
	return FilterState{PriceRange: DefaultPriceRange}
}

// HasAirline reports whether name is in the selected-airlines set.
func (f FilterState) HasAirline(name string) bool {
	for _, a := range f.Airlines {
		if a == name {
			return true
		}
	}
	return false
}

// ToggleAirline adds name to the selection, or removes it when present.
func (f FilterState) ToggleAirline(name string) FilterState {
	if !f.HasAirline(name) {
		f.Airlines = append(append([]string(nil), f.Airlines...), name)
		return f
	}
	kept := make([]string, 0, len(f.Airlines)-1)
	for _, a := range f.Airlines {
		if a != name {
			kept = append(kept, a)
		}
	}
	f.Airlines = kept
	return f
}

// Active reports whether any predicate deviates from the defaults.
func (f FilterState) Active() bool {
	return f.DirectOnly || f.RefundableOnly || f.WithBaggage ||
		len(f.Airlines) > 0 || f.PriceRange != DefaultPriceRange
}

func (f FilterState) keep(o Offer) bool {
	if f.DirectOnly && !o.Direct() {
		return false
	}
	if f.RefundableOnly && !o.Refundable {
		return false
	}
	if f.WithBaggage && leadingInt(o.Baggage.Checked) < baggageThresholdKg {
		return false
	}
	if len(f.Airlines) > 0 && !f.HasAirline(o.Airline) {
		return false
	}
	return o.Price >= f.PriceRange[0] && o.Price <= f.PriceRange[1]
}

// Apply filters offers conjunctively and sorts the survivors by key.
// It never mutates its input; the result is always a fresh slice.
func Apply(offers []Offer, filters FilterState, key SortKey) []Offer {
	result := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if filters.keep(o) {
			result = append(result, o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch key {
		case SortDuration:
			return a.DurationMinutes < b.DurationMinutes
		case SortDeparture:
			// Lexicographic compare is correct for zero-padded HH:MM.
			return a.DepartureTime < b.DepartureTime
		case SortArrival:
			return a.ArrivalTime < b.ArrivalTime
		default:
			return a.Price < b.Price
		}
	})
	return result
}

// leadingInt parses the numeric prefix of a label like "30 kg".
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
