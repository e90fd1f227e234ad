package ui

// View identifies the active page.
type View int

const (
	ViewHome View = iota
	ViewResults
	ViewBooking
	ViewConfirmation
	ViewHotels
	ViewPackages
	ViewDeals
	ViewLogin
	ViewRegister
	ViewProfile
	ViewAdminLogin
	ViewAdminDashboard
)

// Title returns the page name shown in the header.
func (v View) Title() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewResults:
		return "Flight Results"
	case ViewBooking:
		return "Booking"
	case ViewConfirmation:
		return "Confirmation"
	case ViewHotels:
		return "Hotels"
	case ViewPackages:
		return "Packages"
	case ViewDeals:
		return "Deals"
	case ViewLogin:
		return "Sign In"
	case ViewRegister:
		return "Register"
	case ViewProfile:
		return "Profile"
	case ViewAdminLogin:
		return "Admin Portal"
	case ViewAdminDashboard:
		return "Admin Dashboard"
	}
	return "Home"
}

// routeGuards is the input to resolveView: the state the guarded routes
// depend on.
type routeGuards struct {
	hasSelection bool // an offer is selected for checkout
	authed       bool
	admin        bool
}

// resolveView applies the guarded-route rules and returns the view that
// should actually be shown. Checkout without a selection redirects to the
// results list; the confirmation without one redirects home; profile
// requires a session and the dashboard an admin session.
func resolveView(target View, g routeGuards) View {
	switch target {
	case ViewBooking:
		if !g.hasSelection {
			return ViewResults
		}
	case ViewConfirmation:
		if !g.hasSelection {
			return ViewHome
		}
	case ViewProfile:
		if !g.authed {
			return ViewLogin
		}
	case ViewAdminDashboard:
		if !g.admin {
			return ViewAdminLogin
		}
	}
	return target
}

// menuEntry is one row of the navigation overlay.
type menuEntry struct {
	label string
	view  View
}

// menuEntries lists the destinations reachable from the nav overlay.
func menuEntries(authed bool) []menuEntry {
	entries := []menuEntry{
		{"Home", ViewHome},
		{"Flights", ViewResults},
		{"Hotels", ViewHotels},
		{"Packages", ViewPackages},
		{"Deals", ViewDeals},
	}
	if authed {
		entries = append(entries, menuEntry{"Profile", ViewProfile})
	} else {
		entries = append(entries,
			menuEntry{"Sign In", ViewLogin},
			menuEntry{"Register", ViewRegister},
		)
	}
	entries = append(entries, menuEntry{"Admin", ViewAdminLogin})
	return entries
}
