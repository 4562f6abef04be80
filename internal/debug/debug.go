package debug

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by Enable when another process holds the log file.
var ErrLocked = errors.New("debug log is in use by another process")

var (
	enabled bool
	logFile *os.File
	lock    *flock.Flock
	mu      sync.Mutex
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return fmt.Errorf("debug logging already enabled")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("locking %s: %w", fileLock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("%s: %w", path, ErrLocked)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		_ = fileLock.Unlock()
		return err
	}

	logFile = f
	lock = fileLock
	enabled = true

	logLocked("Debug logging enabled")
	return nil
}

// Close closes the debug log file and releases its lock.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if lock != nil {
		_ = lock.Unlock()
		lock = nil
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logLocked(format, args...)
}

func logLocked(format string, args ...interface{}) {
	if !enabled || logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}
