package pointer

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring constants of the follower: stiffness 500 and damping 28 on a unit
// mass, expressed as harmonica's angular frequency and damping ratio.
var (
	followerFrequency = math.Sqrt(500)
	followerDamping   = 28 / (2 * math.Sqrt(500))
)

// Follower eases the painted follower towards its anchor. The tracked
// cursor itself is never smoothed; only where the follower is drawn lags.
type Follower struct {
	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	placed bool
}

// NewFollower creates a follower stepped once per frame of the given
// interval.
func NewFollower(frame time.Duration) *Follower {
	if frame <= 0 {
		frame = 50 * time.Millisecond
	}
	return &Follower{
		spring: harmonica.NewSpring(frame.Seconds(), followerFrequency, followerDamping),
	}
}

// Snap places the follower at (x, y) at rest.
func (f *Follower) Snap(x, y int) {
	f.x, f.y = float64(x), float64(y)
	f.vx, f.vy = 0, 0
	f.placed = true
}

// Placed reports whether the follower has a position yet.
func (f *Follower) Placed() bool {
	return f.placed
}

// Step advances the spring one frame towards (x, y). An unplaced follower
// snaps there instead.
func (f *Follower) Step(x, y int) {
	if !f.placed {
		f.Snap(x, y)
		return
	}
	f.x, f.vx = f.spring.Update(f.x, f.vx, float64(x))
	f.y, f.vy = f.spring.Update(f.y, f.vy, float64(y))
}

// Position is the current painted position in whole cells.
func (f *Follower) Position() (int, int) {
	return int(math.Round(f.x)), int(math.Round(f.y))
}
