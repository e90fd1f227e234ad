package ui

import "testing"

func TestResolveView_Guards(t *testing.T) {
	tests := []struct {
		name   string
		target View
		guards routeGuards
		want   View
	}{
		{"booking without selection", ViewBooking, routeGuards{}, ViewResults},
		{"booking with selection", ViewBooking, routeGuards{hasSelection: true}, ViewBooking},
		{"confirmation without selection", ViewConfirmation, routeGuards{}, ViewHome},
		{"confirmation with selection", ViewConfirmation, routeGuards{hasSelection: true}, ViewConfirmation},
		{"profile logged out", ViewProfile, routeGuards{}, ViewLogin},
		{"profile logged in", ViewProfile, routeGuards{authed: true}, ViewProfile},
		{"dashboard as guest", ViewAdminDashboard, routeGuards{}, ViewAdminLogin},
		{"dashboard as regular user", ViewAdminDashboard, routeGuards{authed: true}, ViewAdminLogin},
		{"dashboard as admin", ViewAdminDashboard, routeGuards{authed: true, admin: true}, ViewAdminDashboard},
		{"home is never guarded", ViewHome, routeGuards{}, ViewHome},
		{"results are never guarded", ViewResults, routeGuards{}, ViewResults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveView(tt.target, tt.guards); got != tt.want {
				t.Fatalf("resolveView(%v, %+v) = %v, want %v", tt.target, tt.guards, got, tt.want)
			}
		})
	}
}

func TestMenuEntries_FollowSession(t *testing.T) {
	guest := menuEntries(false)
	if !hasMenuEntry(guest, ViewLogin) || !hasMenuEntry(guest, ViewRegister) {
		t.Fatal("guest menu should offer sign in and register")
	}
	if hasMenuEntry(guest, ViewProfile) {
		t.Fatal("guest menu should not offer the profile")
	}

	authed := menuEntries(true)
	if !hasMenuEntry(authed, ViewProfile) {
		t.Fatal("authenticated menu should offer the profile")
	}
	if hasMenuEntry(authed, ViewLogin) || hasMenuEntry(authed, ViewRegister) {
		t.Fatal("authenticated menu should not offer sign in or register")
	}
}

func hasMenuEntry(entries []menuEntry, v View) bool {
	for _, e := range entries {
		if e.view == v {
			return true
		}
	}
	return false
}

func TestViewTitle_AllNamed(t *testing.T) {
	views := []View{
		ViewHome, ViewResults, ViewBooking, ViewConfirmation,
		ViewHotels, ViewPackages, ViewDeals,
		ViewLogin, ViewRegister, ViewProfile,
		ViewAdminLogin, ViewAdminDashboard,
	}
	for _, v := range views {
		if v.Title() == "" {
			t.Errorf("view %d has no title", v)
		}
	}
}
