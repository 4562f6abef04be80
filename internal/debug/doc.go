// Package debug provides debug logging functionality for rusuku.
//
// When enabled via the --debug flag, it logs key dispatches, timer
// transitions and configuration warnings to a file. The file is held under
// an exclusive lock so two running dashboards never share a log.
package debug
