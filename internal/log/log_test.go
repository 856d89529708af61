package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebugMode(debug)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetDebugMode(false)
	})
	return &buf
}

func TestDebugOnlyInDebugMode(t *testing.T) {
	buf := capture(t, false)
	Debug("hidden %d", 1)
	DebugConfig("config", map[string]int{"a": 1})
	DebugCommand("git", []string{"status"})
	DebugDuration("commit", time.Second)
	assert.Empty(t, buf.String())

	SetDebugMode(true)
	assert.True(t, IsDebugMode())
	Debug("shown %d", 2)
	DebugConfig("config", map[string]int{"a": 1})
	DebugCommand("git", []string{"rev-parse", "--abbrev-ref", "HEAD"})

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] shown 2")
	assert.Contains(t, out, `"a": 1`)
	assert.Contains(t, out, "Exec: git rev-parse --abbrev-ref HEAD")
}

func TestLevels(t *testing.T) {
	buf := capture(t, false)
	Warn("careful %s", "now")

	assert.Contains(t, buf.String(), "Warning: careful now\n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, strings.Repeat("界", 3)+"...", truncate(strings.Repeat("界", 5), 3))
}
