package logging

import "testing"

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		logger := New(level)
		if logger == nil || logger.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestNewWithFormat(t *testing.T) {
	if NewWithFormat("info", "text") == nil {
		t.Fatal("expected text logger")
	}
	if NewWithFormat("info", "json") == nil {
		t.Fatal("expected json logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
	logger.Info("smoke", "key", "value")
}
