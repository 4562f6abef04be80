package app

import "time"

// Message types for the bubbletea app.

// TickMsg is sent on every redraw interval so the elapsed time stays current.
type TickMsg time.Time
