package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/component"
	"golang.org/x/image/colornames"
)

const (
	heartRadius  = 12
	heartSpacing = 8
	healthBarTop = 30
)

var heartEmpty = color.NRGBA{R: 0x33, G: 0x2a, B: 0x44, A: 0xff}

// HealthBar is the row of lives in the top-right corner. It slides in from
// the right edge and slides back out when the round ends.
type HealthBar struct {
	lives *component.Lives
	x     component.GoalMotion
}

// NewHealthBar creates a health bar just off the right edge, gliding in.
func NewHealthBar(maxLives int) *HealthBar {
	lives := component.NewLives(maxLives)
	width := float64(lives.Max)*(heartRadius*2+heartSpacing) + heartSpacing
	h := &HealthBar{
		lives: lives,
		x:     component.NewGoalMotion(common.BaseWidth+60, component.ContainerTravel),
	}
	h.SetNewGoalX(common.BaseWidth - width)
	return h
}

// Damage removes one life and returns how many remain.
func (h *HealthBar) Damage() int {
	return h.lives.Lose()
}

// Lives returns the remaining lives.
func (h *HealthBar) Lives() int {
	return h.lives.Current
}

func (h *HealthBar) SetNewGoalX(x float64) {
	h.x.SetGoal(x)
}

func (h *HealthBar) X() float64     { return h.x.Position }
func (h *HealthBar) GoalX() float64 { return h.x.Goal }

func (h *HealthBar) Update() {
	h.x.Advance()
}

func (h *HealthBar) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for slot := 0; slot < h.lives.Max; slot++ {
		cx := float32(h.x.Position) + heartSpacing + heartRadius + float32(slot)*(heartRadius*2+heartSpacing)
		fill := color.Color(colornames.Lightcoral)
		if slot >= h.lives.Current {
			fill = heartEmpty
		}
		vector.DrawFilledCircle(screen, cx, healthBarTop, heartRadius, fill, true)
		vector.StrokeCircle(screen, cx, healthBarTop, heartRadius, 2, colornames.White, true)
	}
}
