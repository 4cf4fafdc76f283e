package field

import (
	"image/color"
	"math"
	"time"
)

// Appearance is how a particle kind is drawn.
type Appearance struct {
	Core      float64     // core dot size in pixels; ambient stars use Star.Size
	Spread    float64     // extra solid radius of the glow in pixels
	Color     color.NRGBA // core colour
	GlowColor color.NRGBA // glow colour with its peak alpha
}

// Palette colours match the green theme of the page.
var (
	colorAmbient      = color.NRGBA{R: 187, G: 247, B: 208, A: 255}
	colorShootingCore = color.NRGBA{R: 134, G: 239, B: 172, A: 255}
	colorShootingGlow = color.NRGBA{R: 134, G: 239, B: 172, A: 128}
	colorCometCore    = color.NRGBA{R: 74, G: 222, B: 128, A: 255}
	colorCometGlow    = color.NRGBA{R: 74, G: 222, B: 128, A: 179}
)

var appearances = map[Kind]Appearance{
	KindAmbient:      {Color: colorAmbient},
	KindShootingStar: {Core: 2, Spread: 1, Color: colorShootingCore, GlowColor: colorShootingGlow},
	KindComet:        {Core: 3, Spread: 2, Color: colorCometCore, GlowColor: colorCometGlow},
}

// Look returns the appearance of a particle kind.
func Look(k Kind) Appearance {
	return appearances[k]
}

const (
	pulseScalePeak   = 1.2
	pulseOpacityPeak = 1.5
)

// pulsePhase maps t onto an eased wave: 0 at the start and end of each
// period, 1 at its midpoint, slow at both ends.
func pulsePhase(t time.Duration, period float64) float64 {
	if period <= 0 {
		return 0
	}
	u := math.Mod(t.Seconds(), period) / period
	return 0.5 - 0.5*math.Cos(2*math.Pi*u)
}

// Pulse returns the star's scale and opacity at animation time t. The
// oscillation runs independently of the tick loop.
func (s Star) Pulse(t time.Duration) (scale, opacity float64) {
	k := pulsePhase(t, s.PulsePeriod)
	scale = 1 + (pulseScalePeak-1)*k
	opacity = math.Min(1, s.Opacity*(1+(pulseOpacityPeak-1)*k))
	return scale, opacity
}
