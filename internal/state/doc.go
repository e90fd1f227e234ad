// Package state provides the application's state containers.
//
// Each store is an independent, narrowly-scoped container: search criteria,
// flight results, the booking draft, the authenticated session, and
// transient view flags. No store owns another; they are composed only by
// shared consumption in the UI, which receives them by injection at
// startup. Fresh instances per test give isolation for free.
//
// Stores guard their fields with a mutex and hand out snapshot copies.
// The UI event loop is single-threaded, but delayed commands (the simulated
// network latency) deliver messages from other goroutines, so the stores
// stay safe under concurrent access the same way the rest of the program's
// shared state does.
//
// The session store is the only one with a persistence requirement: every
// mutation applies the pure state transition first, then explicitly invokes
// the injected persister with the new snapshot.
package state
