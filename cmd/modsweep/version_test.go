package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	if got := getVersion(); got == "" {
		t.Error("expected non-empty version")
	}

	t.Run("ldflags value wins", func(t *testing.T) {
		old := version
		version = "v1.2.3"
		defer func() { version = old }()

		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("got %q, expected v1.2.3", got)
		}
	})
}

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "modsweep version") {
		t.Errorf("expected version line, got %q", output)
	}
	if !strings.Contains(output, "commit:") {
		t.Errorf("expected commit line, got %q", output)
	}
	if !strings.Contains(output, "built:") {
		t.Errorf("expected build date line, got %q", output)
	}
}
