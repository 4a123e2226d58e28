package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetDebug(false)
	})
	return &buf
}

func TestDebugSuppressedByDefault(t *testing.T) {
	buf := capture(t)
	SetDebug(false)

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("info line missing: %q", out)
	}
}

func TestDebugEnabled(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	Debugf("traced %s", "call")
	if !strings.Contains(buf.String(), "[DEBUG] traced call") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestLevelPrefixes(t *testing.T) {
	buf := capture(t)
	SetDebug(false)

	Errorf("boom")
	Warnf("careful")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] boom") {
		t.Errorf("error prefix missing: %q", out)
	}
	if !strings.Contains(out, "[WARN] careful") {
		t.Errorf("warn prefix missing: %q", out)
	}
}
