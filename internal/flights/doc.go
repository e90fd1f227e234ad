// Package flights defines the flight offer model, the randomized result
// generator, and the filter/sort pipeline applied to generated results.
//
// The generator is a mock: offers are synthesized in-process, not fetched.
// Randomness comes from an injected source so tests can seed it; production
// wiring supplies a time-seeded source. The pipeline is a pure function of
// (offers, filters, sort key) and is recomputed on every read by the
// results store rather than cached.
package flights
