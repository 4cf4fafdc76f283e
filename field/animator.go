package field

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// globalSource adapts the package-level math/rand functions to Source.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Animator owns a particle field and the two periodic ticks that age it.
// It is not safe for concurrent use: Activate, Deactivate, Update and
// State must all be called from the same goroutine.
type Animator struct {
	src    Source
	logger *zap.Logger

	state       State
	initialized bool
	active      bool
	elapsed     time.Duration

	shooting *stream
	comets   *stream

	shootingTimer *Interval
	cometTimer    *Interval
}

// Option configures an Animator.
type Option func(*Animator)

// WithSource sets the random source used for every spawned particle.
func WithSource(src Source) Option {
	return func(a *Animator) {
		if src != nil {
			a.src = src
		}
	}
}

// WithLogger sets the logger for lifecycle and spawn events.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Animator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithPeriods overrides the tick periods. Non-positive values keep the
// defaults.
func WithPeriods(shooting, comet time.Duration) Option {
	return func(a *Animator) {
		if shooting > 0 {
			a.shootingTimer.period = shooting
		}
		if comet > 0 {
			a.cometTimer.period = comet
		}
	}
}

// NewAnimator creates an inactive animator with an empty field.
func NewAnimator(opts ...Option) *Animator {
	a := &Animator{
		src:    globalSource{},
		logger: zap.NewNop(),
	}
	a.shootingTimer = NewInterval(ShootingStarStream.Period, a.tickShooting)
	a.cometTimer = NewInterval(CometStream.Period, a.tickComets)

	for _, opt := range opts {
		opt(a)
	}

	a.shooting = newStream(ShootingStarStream, a.src)
	a.comets = newStream(CometStream, a.src)
	return a
}

// Activate starts both ticks. The ambient stars are generated on the first
// activation only.
func (a *Animator) Activate() {
	if a.active {
		return
	}
	if !a.initialized {
		a.state.Ambient = newAmbient(a.src)
		a.initialized = true
	}
	a.active = true
	a.shootingTimer.Start()
	a.cometTimer.Start()

	a.logger.Debug("Field activated",
		zap.Int("ambient", len(a.state.Ambient)),
		zap.Duration("shooting_period", a.shootingTimer.Period()),
		zap.Duration("comet_period", a.cometTimer.Period()))
}

// Deactivate cancels both ticks. No tick fires after it returns.
func (a *Animator) Deactivate() {
	if !a.active {
		return
	}
	a.shootingTimer.Stop()
	a.cometTimer.Stop()
	a.active = false

	a.logger.Debug("Field deactivated",
		zap.Int("shooting", len(a.state.Shooting)),
		zap.Int("comets", len(a.state.Comets)))
}

// Active reports whether the ticks are running.
func (a *Animator) Active() bool {
	return a.active
}

// Update advances the animation clock by dt and runs any ticks that fall
// due. It does nothing while the animator is inactive.
func (a *Animator) Update(dt time.Duration) {
	if !a.active || dt <= 0 {
		return
	}
	a.elapsed += dt
	a.shootingTimer.Advance(dt)
	a.cometTimer.Advance(dt)
}

// Elapsed returns the total active time, used to phase the ambient pulse.
func (a *Animator) Elapsed() time.Duration {
	return a.elapsed
}

// State returns the current field. Callers must treat it as read-only.
func (a *Animator) State() State {
	return a.state
}

func (a *Animator) tickShooting() {
	next, spawned := a.shooting.tick(a.state.Shooting)
	a.state.Shooting = next
	if spawned {
		a.logger.Debug("Shooting star spawned", zap.Int("count", len(next)))
	}
}

func (a *Animator) tickComets() {
	next, spawned := a.comets.tick(a.state.Comets)
	a.state.Comets = next
	if spawned {
		a.logger.Debug("Comet spawned", zap.Int("count", len(next)))
	}
}
