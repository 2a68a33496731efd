package logging

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn with stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	require.NoError(t, w.Close())

	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return sb.String()
}

func TestLoggerLevels(t *testing.T) {
	log := New(false, true)

	out := captureStderr(t, func() {
		log.Info("stored %s", "svc")
		log.Warn("prompt skipped")
		log.Error("vault unavailable")
	})

	assert.Contains(t, out, "✓ stored svc")
	assert.Contains(t, out, "⚠ prompt skipped")
	assert.Contains(t, out, "✗ vault unavailable")
	assert.NotContains(t, out, "\033[")
}

func TestLoggerDebugSuppressedByDefault(t *testing.T) {
	log := New(false, true)

	out := captureStderr(t, func() {
		log.Debug("query shape: %d keys", 4)
	})
	assert.Empty(t, out)

	debug := New(true, true)
	out = captureStderr(t, func() {
		debug.Debug("query shape: %d keys", 4)
	})
	assert.Contains(t, out, "[DEBUG] query shape: 4 keys")
}

func TestLoggerColorToggle(t *testing.T) {
	log := New(false, false)

	out := captureStderr(t, func() {
		log.Error("boom")
	})
	assert.Contains(t, out, "\033[31m")
}

func TestSecretNeverPrintsValue(t *testing.T) {
	t.Parallel()

	s := Secret("hunter2")

	for _, rendered := range []string{
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprint(s),
	} {
		assert.NotContains(t, rendered, "hunter2")
		assert.Contains(t, rendered, "[REDACTED]")
	}
}
