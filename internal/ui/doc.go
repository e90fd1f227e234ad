// Package ui implements the vista terminal interface with Bubble Tea.
//
// The Model is the root application state. It owns no domain data: the
// injected stores (search criteria, results, booking draft, session,
// transient flags) are canonical, and every render re-reads them. Views
// correspond to the pages of the site: home with the search form and
// marketing sections, flight results with the filter sidebar, the
// three-step checkout, the confirmation, the hotel/package/deal listings,
// login and registration, the profile, and the admin portal.
//
// Navigation always goes through navigate, which enforces the two guarded
// routes: checkout without a selected offer bounces to the results view,
// and the confirmation without one bounces home.
//
// Simulated network latency (search, login, newsletter) is modeled with
// tea.Tick commands; the delayed message fires regardless of where the
// user has navigated in the meantime, and its payload still lands in the
// stores.
package ui
