package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAnimatorInactiveUntilActivated(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Update(10 * time.Second)

	assert.False(t, a.Active())
	assert.Zero(t, a.State().Len())
	assert.Zero(t, a.Elapsed())
}

func TestAnimatorActivateGeneratesAmbientOnce(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Activate()
	require.Len(t, a.State().Ambient, AmbientCount)

	first := append([]Star(nil), a.State().Ambient...)
	for i := 0; i < 120; i++ {
		a.Update(500 * time.Millisecond)
	}
	assert.Equal(t, first, a.State().Ambient)

	a.Deactivate()
	a.Activate()
	assert.Equal(t, first, a.State().Ambient)
}

func TestAnimatorTicks(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Activate()

	a.Update(999 * time.Millisecond)
	assert.Empty(t, a.State().Shooting)

	a.Update(time.Millisecond)
	assert.Len(t, a.State().Shooting, 1)
	assert.Empty(t, a.State().Comets)

	a.Update(4 * time.Second)
	assert.Len(t, a.State().Shooting, MaxShootingStars)
	assert.Len(t, a.State().Comets, 1)
	assert.Equal(t, 5*time.Second, a.Elapsed())
}

func TestAnimatorPopulationsStayCapped(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Activate()
	for i := 0; i < 20000; i++ {
		a.Update(250 * time.Millisecond)
		st := a.State()
		require.LessOrEqual(t, len(st.Shooting), MaxShootingStars)
		require.LessOrEqual(t, len(st.Comets), MaxComets)
		require.Len(t, st.Ambient, AmbientCount)
	}
}

func TestAnimatorDeactivateStopsMutation(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Activate()
	a.Update(7 * time.Second)

	before := a.State()
	shooting := append([]Streak(nil), before.Shooting...)
	comets := append([]Streak(nil), before.Comets...)
	elapsed := a.Elapsed()

	a.Deactivate()
	for i := 0; i < 10; i++ {
		a.Update(5 * time.Second)
	}

	after := a.State()
	assert.Equal(t, shooting, after.Shooting)
	assert.Equal(t, comets, after.Comets)
	assert.Equal(t, elapsed, a.Elapsed())
	assert.False(t, a.Active())
}

func TestAnimatorReactivationResetsPhase(t *testing.T) {
	a := NewAnimator(WithSource(seeded()))
	a.Activate()
	a.Update(900 * time.Millisecond)
	a.Deactivate()
	a.Activate()

	// The partial period before deactivation is discarded.
	a.Update(200 * time.Millisecond)
	assert.Empty(t, a.State().Shooting)
}

func TestAnimatorWithPeriods(t *testing.T) {
	a := NewAnimator(WithSource(seeded()), WithPeriods(100*time.Millisecond, 0))
	a.Activate()
	a.Update(300 * time.Millisecond)

	assert.Len(t, a.State().Shooting, 3)
	assert.Empty(t, a.State().Comets)
}

func TestAnimatorLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewAnimator(WithSource(seeded()), WithLogger(zap.New(core)))

	a.Activate()
	a.Update(time.Second)
	a.Deactivate()
	a.Deactivate()

	assert.Equal(t, 1, logs.FilterMessage("Field activated").Len())
	assert.Equal(t, 1, logs.FilterMessage("Shooting star spawned").Len())
	assert.Equal(t, 1, logs.FilterMessage("Field deactivated").Len())
}
