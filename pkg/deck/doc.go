// Package deck provides the in-memory deck store backing the mock server.
//
// A deck is a named collection of flashcard review records stored as opaque
// CSV text and identified by a path-like string (e.g. /anki/Spanish.csv).
// The store keeps two synchronized structures: an ordered list of descriptors
// (path + display title) and a path-keyed content map. Saving a path ensures
// a descriptor exists; renaming moves both at once.
//
// The store is process-wide state with no persistence. It is seeded at
// startup and discarded on exit.
package deck
