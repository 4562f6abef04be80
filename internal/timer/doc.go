// Package timer provides the pausable stopwatch behind the dashboard header.
//
// A Timer is either stopped or running. Elapsed time accumulates only while
// running, so any sequence of Start, Pause and Resume calls yields the sum of
// the completed run segments plus the one in progress.
package timer
