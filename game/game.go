package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"starfolio/field"
)

// maxDeltaTime clamps the per-update step so a paused window does not
// replay a burst of ticks when it resumes.
const maxDeltaTime = 100 * time.Millisecond

// tpsDropThreshold is the fraction of the target TPS below which a profile
// is captured.
const tpsDropThreshold = 0.9

// Game hosts the particle field in an Ebiten window
type Game struct {
	animator *field.Animator
	renderer *Renderer
	viewport *Viewport
	config   Config
	logger   *zap.Logger

	// TPS tracking
	tps            float64
	tpsCounter     int
	tpsTimer       time.Duration
	startTime      time.Time
	lastUpdateTime time.Time

	// Performance profiling, nil unless configured
	profiler *Profiler

	closed bool
}

// NewGame creates the window host and activates its animator
func NewGame(config Config, logger *zap.Logger) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	viewport := NewViewport(float64(config.ScreenWidth), float64(config.ScreenHeight))
	g := &Game{
		animator: field.NewAnimator(
			field.WithLogger(logger.Named("field")),
			field.WithPeriods(config.ShootingStarPeriod, config.CometPeriod),
		),
		renderer:       NewRenderer(viewport),
		viewport:       viewport,
		config:         config,
		logger:         logger,
		tps:            float64(config.TPS),
		startTime:      time.Now(),
		lastUpdateTime: time.Now(),
	}

	if config.ProfileDir != "" {
		profiler, err := NewProfiler(config.ProfileDir, logger.Named("profiler"))
		if err != nil {
			return nil, err
		}
		g.profiler = profiler
	}

	GetDebugState().ShowHUD = config.ShowHUD
	g.animator.Activate()
	return g, nil
}

// Animator returns the field animator driven by this window
func (g *Game) Animator() *field.Animator {
	return g.animator
}

// Close deactivates the animator and waits for any profile capture. It is
// safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.animator.Deactivate()
	if g.profiler != nil {
		g.profiler.Wait()
	}
	g.logger.Debug("Window host closed")
}

// Update advances the field by the wall time since the previous update
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	// F3 toggles the population overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		debugState := GetDebugState()
		debugState.ShowHUD = !debugState.ShowHUD
	}

	now := time.Now()
	g.step(now.Sub(g.lastUpdateTime), now)
	g.lastUpdateTime = now
	return nil
}

// step advances the animator by dt and refreshes the TPS estimate.
func (g *Game) step(dt time.Duration, now time.Time) {
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}
	g.animator.Update(dt)

	g.tpsTimer += dt
	g.tpsCounter++
	if g.tpsTimer < 500*time.Millisecond {
		return
	}
	g.tps = float64(g.tpsCounter) / g.tpsTimer.Seconds()
	g.tpsCounter = 0
	g.tpsTimer = 0

	// Skip detection for the first 3 seconds after launch
	if g.profiler == nil || now.Sub(g.startTime) < 3*time.Second {
		return
	}
	if g.tps < float64(g.config.TPS)*tpsDropThreshold {
		reason := fmt.Sprintf("tps%.0f", g.tps)
		if err := g.profiler.CaptureProfile(reason); err == nil {
			g.logger.Warn("TPS drop detected, capturing profile", zap.Float64("tps", g.tps))
		}
	}
}

// Draw renders the field
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.animator.State()
	g.renderer.Render(screen, st, g.animator.Elapsed())
	if GetDebugState().ShowHUD {
		drawHUD(screen, st, g.tps)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
