package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestForReturnsSameLogger(t *testing.T) {
	if For("desk") != For("desk") {
		t.Error("For should return the same logger for a component")
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(log.WarnLevel)
	defer SetLevel(log.InfoLevel)

	l := For("footer")
	l.Info("hidden")
	l.Warn("shown", "item", "Meta")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info message logged at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "footer") {
		t.Errorf("warn message missing or unprefixed: %q", got)
	}
}
