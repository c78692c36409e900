package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DebugDraw outlines every touch circle. The circle under the pointer is
// drawn in the hover colour.
func (w *TouchWorld) DebugDraw(screen *ebiten.Image) {
	if w == nil || w.space == nil || screen == nil {
		return
	}
	var hovered any
	if w.pointer != nil {
		hovered = w.Under(w.pointer.Cursor())
	}
	cp.DrawSpace(w.space, &touchDrawer{screen: screen, hovered: hovered})
}

type touchDrawer struct {
	screen  *ebiten.Image
	hovered any
}

func (d *touchDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	vector.StrokeCircle(d.screen, float32(pos.X), float32(pos.Y), float32(radius), 1, c, true)
	ax := pos.X + math.Cos(angle)*radius
	ay := pos.Y + math.Sin(angle)*radius
	vector.StrokeLine(d.screen, float32(pos.X), float32(pos.Y), float32(ax), float32(ay), 1, c, true)
}

func (d *touchDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, fcolorToRGBA(fill), true)
}

func (d *touchDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, outline, data)
}

func (d *touchDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.DrawSegment(verts[i], verts[(i+1)%count], outline, data)
	}
}

func (d *touchDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	vector.DrawFilledCircle(d.screen, float32(pos.X), float32(pos.Y), float32(size/2), fcolorToRGBA(fill), true)
}

func (d *touchDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *touchDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *touchDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && d.hovered != nil && shape.UserData == d.hovered {
		return cp.FColor{R: 1.0, G: 0.78, B: 0.56, A: 1.0}
	}
	return cp.FColor{R: 0.62, G: 0.85, B: 0.96, A: 1.0}
}

func (d *touchDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *touchDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *touchDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(math.Max(0, math.Min(1, float64(v))) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
