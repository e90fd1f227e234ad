// Package catalog holds the static marketing data the demo ships with:
// airline partners, an airport directory, destinations, hotels, holiday
// packages, deals, and testimonials. Everything here is read-only.
package catalog
