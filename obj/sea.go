package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/component"
)

var seaColor = color.NRGBA{R: 0x5a, G: 0x7d, B: 0xd8, A: 0xb0}

// Sea is the water line at the bottom of the screen. Bubbles that sink into
// it cost the player a life.
type Sea struct {
	y component.GoalMotion
}

// NewSea creates a sea below the screen that rises to level.
func NewSea(level float64) *Sea {
	s := &Sea{y: component.NewGoalMotion(common.BaseHeight, component.ContainerTravel)}
	s.SetNewGoal(level)
	return s
}

func (s *Sea) SetNewGoal(y float64) {
	s.y.SetGoal(y)
}

// Y is the current water line.
func (s *Sea) Y() float64 { return s.y.Position }

// GoalY is the water line the sea is moving toward.
func (s *Sea) GoalY() float64 { return s.y.Goal }

func (s *Sea) Update() {
	s.y.Advance()
}

func (s *Sea) Draw(screen *ebiten.Image) {
	if screen == nil || s.y.Position >= common.BaseHeight {
		return
	}
	top := float32(s.y.Position)
	vector.DrawFilledRect(screen, 0, top, common.BaseWidth, common.BaseHeight-top, seaColor, false)
}
