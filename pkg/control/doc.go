// Package control provides the optional control API for deckmockd.
//
// The control API runs on its own port, separate from the mock surface, so
// tooling can inspect and reset the server without touching the routes the
// deck editor page depends on. It is disabled by default.
package control
