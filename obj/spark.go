package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tonebubbles/common"
)

const (
	sparkFrames  = 40
	sparkGravity = 0.15
	sparkRadius  = 4
)

// Spark is a short-lived particle thrown out when a bubble pops. Timing is
// frame-based.
type Spark struct {
	x, y   float64
	vx, vy float64
	color  color.NRGBA

	// Frames remaining (in update ticks)
	Frames int
}

// NewBurst returns n sparks spread evenly around (x, y) with a little jitter.
func NewBurst(x, y float64, n int, rng common.Rand) []*Spark {
	sparks := make([]*Spark, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := 2.0
		if rng != nil {
			angle += (rng.Float64() - 0.5) * 0.4
			speed += rng.Float64() * 2
		}
		sparks = append(sparks, &Spark{
			x:      x,
			y:      y,
			vx:     math.Cos(angle) * speed,
			vy:     math.Sin(angle) * speed,
			color:  naturalBubbleColor,
			Frames: sparkFrames,
		})
	}
	return sparks
}

func (s *Spark) Deleted() bool { return s.Frames <= 0 }

func (s *Spark) Update() {
	if s.Frames <= 0 {
		return
	}
	s.x += s.vx
	s.y += s.vy
	s.vy += sparkGravity
	s.Frames--
}

func (s *Spark) Draw(screen *ebiten.Image) {
	if screen == nil || s.Frames <= 0 {
		return
	}
	alpha := float64(s.Frames) / sparkFrames
	r := common.Lerp(1, sparkRadius, float32(alpha))
	vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), r, withAlpha(s.color, alpha), true)
}
