package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "headlines.log")

	logger, err := New(path, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("fetched headlines")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "fetched headlines") {
		t.Errorf("expected info entry in log, got %q", got)
	}
	if strings.Contains(got, "hidden at info level") {
		t.Errorf("debug entry should be filtered at info level, got %q", got)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Stderr, "verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	// Must be safe to call without any setup
	Nop().Warn("discarded")
}
