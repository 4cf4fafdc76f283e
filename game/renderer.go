package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfolio/field"
)

// glowLayers is the number of translucent rings drawn for a streak glow.
const glowLayers = 6

// tailSegments is the number of fading segments in a streak tail.
const tailSegments = 8

var colorBackground = color.NRGBA{R: 10, G: 10, B: 10, A: 255}

// Viewport maps field percentage coordinates onto the screen.
type Viewport struct {
	Width  float64 // Viewport width in pixels
	Height float64 // Viewport height in pixels
}

// NewViewport creates a viewport of the given pixel size
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// FieldToScreen converts field coordinates to screen coordinates
func (v *Viewport) FieldToScreen(p field.Vec2) (float64, float64) {
	return p.X / 100 * v.Width, p.Y / 100 * v.Height
}

// Visible reports whether a screen point is inside the viewport, allowing
// margin pixels on every side for glows that reach in from outside.
func (v *Viewport) Visible(sx, sy, margin float64) bool {
	return sx >= -margin && sx <= v.Width+margin &&
		sy >= -margin && sy <= v.Height+margin
}

// Renderer draws a particle field
type Renderer struct {
	viewport *Viewport
}

// NewRenderer creates a new renderer
func NewRenderer(viewport *Viewport) *Renderer {
	return &Renderer{viewport: viewport}
}

// Render draws the whole field: ambient stars first, then comets, then
// shooting stars on top.
func (r *Renderer) Render(screen *ebiten.Image, st field.State, elapsed time.Duration) {
	screen.Fill(colorBackground)

	for _, star := range st.Ambient {
		r.RenderStar(screen, star, elapsed)
	}
	for _, comet := range st.Comets {
		r.RenderStreak(screen, comet)
	}
	for _, shooting := range st.Shooting {
		r.RenderStreak(screen, shooting)
	}
}

// RenderStar draws one ambient star at its current pulse
func (r *Renderer) RenderStar(screen *ebiten.Image, star field.Star, elapsed time.Duration) {
	sx, sy := r.viewport.FieldToScreen(star.Pos)
	scale, opacity := star.Pulse(elapsed)
	clr := withAlpha(field.Look(field.KindAmbient).Color, opacity)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(star.Size*scale), clr, true)
}

// RenderStreak draws a shooting star or comet: a soft glow whose radius is
// the tail length, a fading tail opposite the heading, and a solid core.
func (r *Renderer) RenderStreak(screen *ebiten.Image, s field.Streak) {
	look := field.Look(s.Kind)
	sx, sy := r.viewport.FieldToScreen(s.Pos)
	if !r.viewport.Visible(sx, sy, s.TailLength*2) {
		return
	}

	glowAlpha := float64(look.GlowColor.A) / 255

	// Glow: rings shrink towards the core and get denser.
	for i := glowLayers; i >= 1; i-- {
		frac := float64(i) / glowLayers
		radius := look.Spread + s.TailLength*0.5*frac
		alpha := glowAlpha * (1 - frac) * 0.5
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), withAlpha(look.GlowColor, alpha), true)
	}

	// Tail trails behind along the travel angle.
	heading := s.Heading()
	segLen := s.TailLength / tailSegments
	for i := 0; i < tailSegments; i++ {
		x0 := sx - heading.X*segLen*float64(i)
		y0 := sy - heading.Y*segLen*float64(i)
		x1 := sx - heading.X*segLen*float64(i+1)
		y1 := sy - heading.Y*segLen*float64(i+1)
		alpha := glowAlpha * (1 - float64(i)/tailSegments)
		width := float32(math.Max(1, look.Core*(1-float64(i)/tailSegments)))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, withAlpha(look.GlowColor, alpha), true)
	}

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(look.Core/2+look.Spread/2), look.Color, true)
}

// withAlpha scales clr's alpha channel by a in [0, 1].
func withAlpha(clr color.NRGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	clr.A = uint8(float64(clr.A) * a)
	return clr
}
