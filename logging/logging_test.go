package logging

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" error ", slog.LevelError},
		{"warn", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tc := range testCases {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("saved group", "members", 3)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message logged at info level: %q", got)
	}
	if !strings.Contains(got, "saved group") || !strings.Contains(got, "members=3") {
		t.Errorf("log output = %q, want the message and its attribute", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("log output to a buffer is colored: %q", got)
	}
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("IsTerminal(buffer) = true, want false")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true, want false")
	}
}
