// Package ui provides rendering functions for the rusuku terminal UI.
//
// Build projects the timer reading and the grid border plan onto a Frame,
// a layout of rectangles with no styling. Render paints a Frame with Lip Gloss
// into the string shown by the terminal. Both are pure; state lives in the
// app package.
package ui
