package field

import "math"

// Vec2 is a position in viewport percentage units (0..100 on each axis).
// Values outside that range are valid while a particle is entering or
// leaving the visible area.
type Vec2 struct {
	X float64
	Y float64
}

// Kind identifies a particle population.
type Kind int

const (
	KindAmbient Kind = iota
	KindShootingStar
	KindComet
)

func (k Kind) String() string {
	switch k {
	case KindAmbient:
		return "ambient"
	case KindShootingStar:
		return "shooting-star"
	case KindComet:
		return "comet"
	default:
		return "unknown"
	}
}

// Star is a static ambient star. Its fields never change after creation.
type Star struct {
	ID          int
	Pos         Vec2
	Size        float64 // radius in pixels
	Opacity     float64 // base opacity, 0..1
	PulsePeriod float64 // seconds for one 1 -> peak -> 1 pulse
}

// Streak is a travelling particle: a shooting star or a comet.
type Streak struct {
	ID         int64
	Kind       Kind
	Pos        Vec2
	Angle      float64 // travel direction in degrees, 0 = +x, 90 = +y (down)
	Speed      float64 // percentage units per tick
	TailLength float64 // glow radius in pixels
}

// advanced returns the streak moved one step along its heading.
func (s Streak) advanced() Streak {
	rad := s.Angle * math.Pi / 180
	s.Pos.X += math.Cos(rad) * s.Speed
	s.Pos.Y += math.Sin(rad) * s.Speed
	return s
}

// Heading returns the unit direction of travel in viewport space.
func (s Streak) Heading() Vec2 {
	rad := s.Angle * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// State is the full particle field. Slices returned to callers are
// snapshots: a tick replaces a population slice instead of mutating it,
// so a renderer may hold on to them until the next State call.
type State struct {
	Ambient  []Star
	Shooting []Streak
	Comets   []Streak
}

// Len returns the total number of particles in the field.
func (s State) Len() int {
	return len(s.Ambient) + len(s.Shooting) + len(s.Comets)
}
