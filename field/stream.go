package field

import "time"

// Population limits and culling threshold. These are fixed visual
// constants, not configuration.
const (
	AmbientCount     = 200
	MaxShootingStars = 5
	MaxComets        = 2

	// CullLimit is the coordinate past which a streak is dropped. The 10
	// unit overshoot lets the glow clear the viewport edge first.
	CullLimit = 110.0

	// spawnOffset places new streaks just outside the entry edge.
	spawnOffset = -10.0
)

// Source is a uniform random source returning values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Range is a half-open interval [Min, Max). A Range with Min == Max is a
// constant.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a Range that always samples v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Sample draws a value from r using src.
func (r Range) Sample(src Source) float64 {
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// StreamConfig describes how one streak population is spawned and paced.
type StreamConfig struct {
	Kind       Kind
	Cap        int
	Period     time.Duration
	SpawnX     Range
	SpawnY     Range
	Angle      Range // degrees
	Speed      Range
	TailLength Range
}

// ShootingStarStream enters from the top edge and falls steeply.
var ShootingStarStream = StreamConfig{
	Kind:       KindShootingStar,
	Cap:        MaxShootingStars,
	Period:     time.Second,
	SpawnX:     Range{0, 100},
	SpawnY:     Fixed(spawnOffset),
	Angle:      Range{60, 90},
	Speed:      Range{0.5, 1.5},
	TailLength: Range{10, 25},
}

// CometStream enters from the left edge on a shallow diagonal.
var CometStream = StreamConfig{
	Kind:       KindComet,
	Cap:        MaxComets,
	Period:     5 * time.Second,
	SpawnX:     Fixed(spawnOffset),
	SpawnY:     Range{0, 100},
	Angle:      Range{15, 45},
	Speed:      Range{0.2, 0.5},
	TailLength: Range{15, 35},
}

// stream owns the spawning rules and id sequence for one population.
type stream struct {
	cfg    StreamConfig
	src    Source
	nextID int64
}

func newStream(cfg StreamConfig, src Source) *stream {
	return &stream{cfg: cfg, src: src}
}

// spawn creates a new streak at the stream's entry edge.
func (s *stream) spawn() Streak {
	s.nextID++
	return Streak{
		ID:         s.nextID,
		Kind:       s.cfg.Kind,
		Pos:        Vec2{X: s.cfg.SpawnX.Sample(s.src), Y: s.cfg.SpawnY.Sample(s.src)},
		Angle:      s.cfg.Angle.Sample(s.src),
		Speed:      s.cfg.Speed.Sample(s.src),
		TailLength: s.cfg.TailLength.Sample(s.src),
	}
}

// tick culls, spawns at most one streak, then advances everything. The
// input slice is never modified; the caller replaces its population with
// the returned slice. spawned reports whether a new streak was admitted.
func (s *stream) tick(pop []Streak) (next []Streak, spawned bool) {
	next = make([]Streak, 0, s.cfg.Cap)
	for _, p := range pop {
		if p.Pos.X < CullLimit && p.Pos.Y < CullLimit {
			next = append(next, p)
		}
	}

	if len(next) < s.cfg.Cap {
		next = append(next, s.spawn())
		spawned = true
	}

	for i := range next {
		next[i] = next[i].advanced()
	}
	return next, spawned
}

// newAmbient generates the fixed ambient star batch.
func newAmbient(src Source) []Star {
	stars := make([]Star, AmbientCount)
	for i := range stars {
		stars[i] = Star{
			ID:          i,
			Pos:         Vec2{X: src.Float64() * 100, Y: src.Float64() * 100},
			Size:        src.Float64()*1.5 + 0.5,
			Opacity:     src.Float64()*0.5 + 0.3,
			PulsePeriod: src.Float64()*2 + 1,
		}
	}
	return stars
}
