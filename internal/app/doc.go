// Package app provides the main Bubble Tea application model for rusuku.
//
// Model owns the session's single Timer. Key presses are dispatched to it in
// Update, and View projects the timer and the grid border plan through the
// ui package. Bubble Tea calls Update and View from one goroutine, so the
// timer needs no locking.
package app
