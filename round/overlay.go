package round

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/obj"
	"golang.org/x/image/colornames"
)

const levelTextScale = 8

// levelText is the "LEVEL n" announcement shown during the first break of
// each level. It fades in, holds, then fades out.
type levelText struct {
	count   int
	opacity float64
	pause   int
	fadeIn  bool

	fade      float64
	pauseTick int
}

func newLevelText(t Timing) levelText {
	return levelText{
		count:     1,
		pause:     t.LevelTextPause,
		fadeIn:    true,
		fade:      t.LevelTextFade,
		pauseTick: t.LevelTextPause,
	}
}

// update advances the announcement. onHold runs when a hold completes.
func (l *levelText) update(active bool, onHold func()) {
	if !active {
		// rearm without cutting a fade-out short
		l.fadeIn = true
		if l.opacity > 0 {
			l.opacity = max(l.opacity-l.fade, 0)
		}
		return
	}

	if !l.fadeIn {
		l.opacity = max(l.opacity-l.fade, 0)
		return
	}

	if l.opacity < 1 {
		l.opacity += l.fade
		return
	}
	l.opacity = 1
	if l.pause > 0 {
		l.pause--
		return
	}
	if onHold != nil {
		onHold()
	}
	l.pause = l.pauseTick
	l.count++
	l.fadeIn = false
}

func (l *levelText) draw(screen *ebiten.Image) {
	alpha := common.Clamp(l.opacity, 0, 1)
	if alpha <= 0 {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(levelTextScale, levelTextScale)
	op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2)
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.Plum)
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(screen, fmt.Sprintf("LEVEL %d", l.count), obj.LabelFace(), op)
}
