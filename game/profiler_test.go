package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfilerCaptureAndCooldown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := NewProfiler(dir, zap.NewNop())
	require.NoError(t, err)
	p.captureDuration = 10 * time.Millisecond

	require.NoError(t, p.CaptureProfile("test"))
	assert.Error(t, p.CaptureProfile("again"), "second capture should hit the cooldown")

	p.Wait()
	assert.False(t, p.IsProfiling())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "tps-drop-")
}
