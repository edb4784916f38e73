package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
)

type saucerProfile struct {
	radius   float64
	speed    float64
	fireRate float64 // Seconds between shots
	score    int
}

var saucerStats = map[entity.HostileKind]saucerProfile{
	entity.LargeSaucer: {radius: 20, speed: 110, fireRate: 1.4, score: config.ScoreLargeSaucer},
	entity.SmallSaucer: {radius: 11, speed: 160, fireRate: 1.0, score: config.ScoreSmallSaucer},
}

// saucerTurnInterval is how often a saucer may change its vertical drift.
const saucerTurnInterval = 1.2

// Saucer is a hostile ship that crosses the field once, shooting at the player.
type Saucer struct {
	X, Y     float64
	VX, VY   float64
	Kind     entity.HostileKind
	Accuracy float64 // 0 fires in a random direction, 1 fires straight at the player

	stats        saucerProfile
	fireCooldown float64
	turnTimer    float64
	destroyed    bool
}

// NewSaucer creates a saucer at (x,y) travelling towards the far side of a
// field that is width units wide.
func NewSaucer(x, y float64, kind entity.HostileKind, accuracy float64, width int) *Saucer {
	stats := saucerStats[kind]
	vx := stats.speed
	if x > float64(width)/2 {
		vx = -vx
	}
	return &Saucer{
		X:            x,
		Y:            y,
		VX:           vx,
		Kind:         kind,
		Accuracy:     accuracy,
		stats:        stats,
		fireCooldown: stats.fireRate,
		turnTimer:    saucerTurnInterval,
	}
}

// Score returns the points awarded for destroying the saucer.
func (s *Saucer) Score() int {
	return s.stats.score
}

// Update moves the saucer and fires. It is removed once it leaves the far edge.
func (s *Saucer) Update(ctx UpdateContext) (bool, error) {
	if s.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	s.turnTimer -= dt
	if s.turnTimer <= 0 {
		s.turnTimer = saucerTurnInterval
		s.VY = float64(ctx.Rand.Intn(3)-1) * s.stats.speed / 2
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt
	ctx.Bounds.WrapY(&s.Y)

	if (s.VX > 0 && s.X > float64(ctx.Bounds.Width)+s.stats.radius) ||
		(s.VX < 0 && s.X < -s.stats.radius) {
		return true, nil
	}

	s.fireCooldown -= dt
	if s.fireCooldown <= 0 && ctx.Spawner != nil {
		s.fireCooldown = s.stats.fireRate
		ctx.Spawner.Spawn(NewProjectile(s.X, s.Y, s.aim(ctx), 0, 0, FromSaucer))
	}

	return false, nil
}

// aim returns the firing angle. Spread shrinks linearly with accuracy, up
// to ±90° at accuracy 0.
func (s *Saucer) aim(ctx UpdateContext) float64 {
	if !ctx.HasPlayer {
		return ctx.Rand.Float64() * 2 * math.Pi
	}
	angle := math.Atan2(ctx.Player.Y-s.Y, ctx.Player.X-s.X)
	spread := (1 - s.Accuracy) * math.Pi / 2
	return angle + (ctx.Rand.Float64()*2-1)*spread
}

// Draw renders the classic flying-saucer silhouette.
func (s *Saucer) Draw(ctx DrawContext) error {
	r := s.stats.radius
	p := ctx.Plot
	// Hull
	drawPolygon(p,
		[]float64{s.X - r, s.X - r/2, s.X + r/2, s.X + r, s.X + r/2, s.X - r/2},
		[]float64{s.Y, s.Y - r/3, s.Y - r/3, s.Y, s.Y + r/3, s.Y + r/3},
	)
	p.Line(s.X-r, s.Y, s.X+r, s.Y)
	// Dome
	drawPolygon(p,
		[]float64{s.X - r/2, s.X - r/4, s.X + r/4, s.X + r/2},
		[]float64{s.Y - r/3, s.Y - r*0.7, s.Y - r*0.7, s.Y - r/3},
	)
	return nil
}

// MarkDestroyed marks the saucer for removal.
func (s *Saucer) MarkDestroyed() {
	s.destroyed = true
}

// IsDestroyed returns true if the saucer is marked for destruction.
func (s *Saucer) IsDestroyed() bool {
	return s.destroyed
}

// GetPosition returns the saucer's center position.
func (s *Saucer) GetPosition() (float64, float64) {
	return s.X, s.Y
}

// GetRadius returns the saucer's collision radius.
func (s *Saucer) GetRadius() float64 {
	return s.stats.radius
}
