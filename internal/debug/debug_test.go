package debug

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
)

func TestLogDisabledIsNoop(t *testing.T) {
	Close()
	if IsEnabled() {
		t.Fatal("Expected logging to be disabled")
	}
	// Must not panic without a file.
	Log("nothing %d", 1)
	Timed("noop")()
}

func TestEnableWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	t.Cleanup(Close)

	Log("timer %s", "started")
	Timed("frame")()
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Debug logging enabled", "timer started", "frame started", "frame completed in"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestEnableFailsWhenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	other := flock.New(path + ".lock")
	if err := other.Lock(); err != nil {
		t.Fatalf("Lock() error: %v", err)
	}
	defer other.Unlock()

	err := Enable(path)
	if err == nil {
		Close()
		t.Fatal("Expected Enable to fail while the log is locked")
	}
	if !errors.Is(err, ErrLocked) {
		t.Errorf("Expected ErrLocked, got %v", err)
	}
	if IsEnabled() {
		t.Error("Logging should stay disabled after a failed Enable")
	}
}

func TestEnableTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	defer Close()

	if err := Enable(path); err == nil {
		t.Error("Expected second Enable to fail")
	}
}
