package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStarPulse(t *testing.T) {
	star := Star{Opacity: 0.6, PulsePeriod: 2}

	tests := []struct {
		name        string
		at          time.Duration
		wantScale   float64
		wantOpacity float64
	}{
		{"start", 0, 1, 0.6},
		{"quarter", 500 * time.Millisecond, 1.1, 0.75},
		{"peak", time.Second, 1.2, 0.9},
		{"back to rest", 2 * time.Second, 1, 0.6},
		{"repeats", 3 * time.Second, 1.2, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, opacity := star.Pulse(tt.at)
			assert.InDelta(t, tt.wantScale, scale, 1e-9)
			assert.InDelta(t, tt.wantOpacity, opacity, 1e-9)
		})
	}
}

func TestStarPulseEasesAtEnds(t *testing.T) {
	star := Star{Opacity: 0.6, PulsePeriod: 3}

	// A sixth of the way in, the ease has covered only a quarter of the swing.
	scale, opacity := star.Pulse(500 * time.Millisecond)
	assert.InDelta(t, 1.05, scale, 1e-9)
	assert.InDelta(t, 0.675, opacity, 1e-9)
}

func TestStarPulseOpacityNeverExceedsOne(t *testing.T) {
	star := Star{Opacity: 0.79, PulsePeriod: 1}
	for ms := 0; ms < 3000; ms += 7 {
		_, opacity := star.Pulse(time.Duration(ms) * time.Millisecond)
		assert.LessOrEqual(t, opacity, 1.0)
	}
}

func TestLook(t *testing.T) {
	shooting := Look(KindShootingStar)
	comet := Look(KindComet)

	assert.Equal(t, 2.0, shooting.Core)
	assert.Equal(t, 3.0, comet.Core)
	assert.Less(t, shooting.Spread, comet.Spread)
	assert.Less(t, shooting.GlowColor.A, comet.GlowColor.A)
	assert.Equal(t, uint8(255), Look(KindAmbient).Color.A)
}
