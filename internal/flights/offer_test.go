package flights

import (
	"testing"

	"github.com/airvista/vista/internal/catalog"
)

func TestOfferRouteAndDirect(t *testing.T) {
	o := Offer{
		From: catalog.Airport{Code: "KHI"},
		To:   catalog.Airport{Code: "DXB"},
	}
	if got := o.Route(); got != "KHI → DXB" {
		t.Fatalf("Route() = %q", got)
	}
	if !o.Direct() {
		t.Fatal("zero stops should report direct")
	}
	o.Stops = 2
	if o.Direct() {
		t.Fatal("two stops should not report direct")
	}
}
