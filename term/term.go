// Package term draws the particle field on a terminal screen.
package term

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"starfolio/field"
)

// Cells are roughly twice as tall as wide; tails are measured in pixels,
// so this converts a tail length into a cell count.
const pixelsPerCell = 8.0

// Renderer paints field states onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialised screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// cell maps a field position onto a screen cell.
func cell(p field.Vec2, width, height int) (int, int) {
	return int(math.Floor(p.X / 100 * float64(width))), int(math.Floor(p.Y / 100 * float64(height)))
}

// Draw paints one frame. elapsed phases the ambient pulse.
func (r *Renderer) Draw(st field.State, elapsed time.Duration) {
	width, height := r.screen.Size()
	r.screen.Clear()

	for _, star := range st.Ambient {
		x, y := cell(star.Pos, width, height)
		scale, opacity := star.Pulse(elapsed)
		r.set(x, y, width, height, starRune(star.Size*scale), shade(field.Look(field.KindAmbient).Color, opacity))
	}
	for _, s := range st.Comets {
		r.drawStreak(s, width, height)
	}
	for _, s := range st.Shooting {
		r.drawStreak(s, width, height)
	}

	r.screen.Show()
}

// drawStreak draws the head and a fading tail opposite the heading.
func (r *Renderer) drawStreak(s field.Streak, width, height int) {
	look := field.Look(s.Kind)
	hx, hy := cell(s.Pos, width, height)
	heading := s.Heading()
	glow := float64(look.GlowColor.A) / 255

	tail := int(s.TailLength/pixelsPerCell) + 1
	for i := tail; i >= 1; i-- {
		x := hx - int(math.Round(heading.X*float64(i)))
		y := hy - int(math.Round(heading.Y*float64(i)/2))
		r.set(x, y, width, height, tailRune(heading), shade(look.GlowColor, glow*(1-float64(i)/float64(tail+1))))
	}

	head := '*'
	if s.Kind == field.KindComet {
		head = '@'
	}
	r.set(hx, hy, width, height, head, shade(look.Color, 1))
}

func (r *Renderer) set(x, y, width, height int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// starRune picks a glyph by apparent size.
func starRune(size float64) rune {
	switch {
	case size >= 1.8:
		return '*'
	case size >= 1.1:
		return '+'
	default:
		return '.'
	}
}

// tailRune picks a line glyph that follows the heading.
func tailRune(h field.Vec2) rune {
	switch {
	case math.Abs(h.X) < 0.4:
		return '|'
	case math.Abs(h.Y) < 0.4:
		return '-'
	case h.X*h.Y > 0:
		return '\\'
	default:
		return '/'
	}
}

// shade blends clr over a black background at the given opacity.
func shade(clr color.NRGBA, opacity float64) tcell.Style {
	a := math.Max(0, math.Min(1, opacity))
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(float64(clr.R)*a), int32(float64(clr.G)*a), int32(float64(clr.B)*a)))
}

// Run initialises a terminal screen and animates the field until ctx is
// cancelled or the user presses Esc, q or Ctrl-C.
func Run(ctx context.Context, a *field.Animator, frame time.Duration, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	return Animate(ctx, screen, a, frame, logger)
}

// Animate runs the field on an already initialised screen. Input events
// are read on a separate goroutine; every field mutation and draw happens
// on the caller's goroutine inside field.Run.
func Animate(ctx context.Context, screen tcell.Screen, a *field.Animator, frame time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	pumpDone := make(chan struct{})
	readerDone := make(chan struct{})

	go func() {
		defer close(pumpDone)
		screen.ChannelEvents(events, quit)
	}()

	go func() {
		defer close(readerDone)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if quitKey(ev) {
					logger.Debug("Quit key pressed")
					cancel()
					return
				}
			}
		}
	}()

	defer func() {
		cancel()
		close(quit)
		<-pumpDone
		<-readerDone
	}()

	renderer := NewRenderer(screen)
	logger.Debug("Terminal host started", zap.Duration("frame", frame))
	return field.Run(ctx, a, frame, func(st field.State) error {
		renderer.Draw(st, a.Elapsed())
		return nil
	})
}

// quitKey reports whether ev should end the animation.
func quitKey(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
