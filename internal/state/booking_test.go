package state

import (
	"testing"
	"time"

	"github.com/airvista/vista/internal/booking"
	"github.com/airvista/vista/internal/flights"
)

func startDraft(t *testing.T, travelers int) *BookingStore {
	t.Helper()
	offer := flights.Offer{ID: "FL1", Price: 28000, Currency: "PKR"}
	s := NewBookingStore()
	s.Start(booking.New(offer, travelers, time.Now()), travelers)
	return s
}

func TestBookingStore_StartSizesPassengerList(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		s := startDraft(t, n)
		if got := len(s.Passengers()); got != n {
			t.Fatalf("travelers=%d: %d passenger forms", n, got)
		}
		if s.Current() == nil {
			t.Fatal("Start did not record the draft booking")
		}
	}
}

func TestBookingStore_SetPassengerByIndex(t *testing.T) {
	s := startDraft(t, 2)
	forms := s.Passengers()

	s.SetPassenger(1, booking.Passenger{
		Title: booking.TitleMs, FirstName: "Sara", LastName: "Ahmed",
		DateOfBirth: "1992-07-01", Nationality: "Pakistani",
	})

	got := s.Passengers()
	if got[1].FirstName != "Sara" || !got[1].Complete() {
		t.Fatalf("passenger 1 = %+v", got[1])
	}
	if got[1].ID != forms[1].ID {
		t.Fatal("SetPassenger must preserve the position's identity")
	}
	if got[0].Complete() {
		t.Fatal("other positions must be untouched")
	}

	// Out-of-range writes are dropped.
	s.SetPassenger(5, booking.Passenger{FirstName: "X"})
	if len(s.Passengers()) != 2 {
		t.Fatal("out-of-range write changed list length")
	}
}

func TestBookingStore_ContactFields(t *testing.T) {
	s := startDraft(t, 1)
	s.SetContact("sara@example.com", "+92 300 1234567")
	email, phone := s.Contact()
	if email != "sara@example.com" || phone != "+92 300 1234567" {
		t.Fatalf("contact = %q / %q", email, phone)
	}
}

func TestBookingStore_FinalizeConfirmsAndAttachesPassengers(t *testing.T) {
	s := startDraft(t, 2)
	s.SetPassenger(0, booking.Passenger{FirstName: "A", LastName: "B", DateOfBirth: "2000-01-01", Nationality: "PK"})
	s.SetPassenger(1, booking.Passenger{FirstName: "C", LastName: "D", DateOfBirth: "2001-01-01", Nationality: "PK"})

	final := s.Finalize()
	if final == nil || final.Status != booking.StatusConfirmed {
		t.Fatalf("Finalize = %+v, want confirmed booking", final)
	}
	if len(final.Passengers) != 2 || final.Passengers[0].FirstName != "A" {
		t.Fatalf("finalized passengers = %+v", final.Passengers)
	}
}

func TestBookingStore_FinalizeWithoutDraft(t *testing.T) {
	if got := NewBookingStore().Finalize(); got != nil {
		t.Fatalf("Finalize on empty store = %+v, want nil", got)
	}
}

func TestBookingStore_Reset(t *testing.T) {
	s := startDraft(t, 2)
	s.SetContact("a@b.pk", "x")
	s.Reset()

	if s.Current() != nil || len(s.Passengers()) != 0 {
		t.Fatal("Reset left draft data behind")
	}
	if email, phone := s.Contact(); email != "" || phone != "" {
		t.Fatal("Reset left contact fields behind")
	}
}
