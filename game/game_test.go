package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfolio/field"
)

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 0
	_, err := NewGame(cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGameStepDrivesAnimator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShootingStarPeriod = 50 * time.Millisecond
	g, err := NewGame(cfg, nil)
	require.NoError(t, err)
	defer g.Close()

	require.True(t, g.Animator().Active())
	assert.Len(t, g.Animator().State().Ambient, field.AmbientCount)

	now := time.Now()
	for i := 0; i < 3; i++ {
		g.step(50*time.Millisecond, now)
	}
	assert.Len(t, g.Animator().State().Shooting, 3)
}

func TestGameStepClampsLongPauses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShootingStarPeriod = 10 * time.Millisecond
	g, err := NewGame(cfg, nil)
	require.NoError(t, err)
	defer g.Close()

	g.step(time.Hour, time.Now())
	assert.Equal(t, maxDeltaTime, g.Animator().Elapsed())
}

func TestGameCloseStopsField(t *testing.T) {
	g, err := NewGame(DefaultConfig(), nil)
	require.NoError(t, err)

	g.Close()
	g.Close()
	assert.False(t, g.Animator().Active())

	before := g.Animator().State()
	g.step(50*time.Millisecond, time.Now())
	assert.Equal(t, before, g.Animator().State())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestGameLayout(t *testing.T) {
	g, err := NewGame(DefaultConfig(), nil)
	require.NoError(t, err)
	defer g.Close()

	w, h := g.Layout(10, 10)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestViewportFieldToScreen(t *testing.T) {
	v := NewViewport(800, 600)
	tests := []struct {
		in     field.Vec2
		wx, wy float64
	}{
		{field.Vec2{X: 0, Y: 0}, 0, 0},
		{field.Vec2{X: 50, Y: 50}, 400, 300},
		{field.Vec2{X: -10, Y: 110}, -80, 660},
	}
	for _, tt := range tests {
		x, y := v.FieldToScreen(tt.in)
		assert.InDelta(t, tt.wx, x, 1e-9)
		assert.InDelta(t, tt.wy, y, 1e-9)
	}

	assert.True(t, v.Visible(-5, 10, 10))
	assert.False(t, v.Visible(-50, 10, 10))
}

func TestWithAlpha(t *testing.T) {
	base := color.NRGBA{R: 1, G: 2, B: 3, A: 200}
	assert.Equal(t, uint8(100), withAlpha(base, 0.5).A)
	assert.Equal(t, uint8(200), withAlpha(base, 3).A)
	assert.Equal(t, uint8(0), withAlpha(base, -1).A)
	assert.Equal(t, base.R, withAlpha(base, 0.5).R)
}

func TestHUDText(t *testing.T) {
	st := field.State{
		Ambient:  make([]field.Star, field.AmbientCount),
		Shooting: make([]field.Streak, 3),
		Comets:   make([]field.Streak, 1),
	}
	got := hudText(st, 59.6)
	assert.Equal(t, "TPS 60\nstars 200\nshooting 3/5\ncomets 1/2", got)
}
