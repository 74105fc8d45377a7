// Package server implements the mock deck API server.
//
// The server answers a fixed set of routes against an in-memory deck store:
// the deck editor page at / and /deck-editor, the deck listing at /api/decks,
// and deck content fetch, save and rename under /api/deck and
// /api/rename-deck. Routes are held in an explicit table and evaluated in
// order, with a plain-text 404 fallback for everything else.
//
// This is a local development aid, not a production surface: no
// authentication, no input sanitization beyond presence checks, no rate
// limiting.
package server
