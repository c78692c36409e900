package obj

import (
	"image/color"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tonebubbles/common"
	"golang.org/x/image/font/basicfont"
)

var labelFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// LabelFace is the shared text face for in-game labels.
func LabelFace() ebtext.Face {
	return labelFace
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(common.Clamp(alpha, 0, 1) * 255)
	return c
}
