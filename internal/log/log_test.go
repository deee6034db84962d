package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})

	SetLevel(LevelInfo)
	Debug("hidden")
	Info("shown", "entries", 3)
	Error("failed", errors.New("boom"), "path", "/tmp/x")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at INFO: %q", out)
	}
	if !strings.Contains(out, "[INFO] shown entries=3") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed err=boom path=/tmp/x") {
		t.Errorf("missing error line: %q", out)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("visible", "odd")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Errorf("debug line missing at DEBUG: %q", buf.String())
	}
	if strings.Contains(buf.String(), "odd") {
		t.Errorf("dangling key should be dropped: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" ERROR ": LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
