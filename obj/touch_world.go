package obj

import (
	"github.com/jakecoffman/cp"
)

const touchStep = 1.0 / 60

// TouchWorld keeps a circle per live bubble in a chipmunk space so the
// cursor can be tested against them.
type TouchWorld struct {
	space   *cp.Space
	pointer Pointer
}

// TouchBody is one bubble's footprint in the touch world.
type TouchBody struct {
	world *TouchWorld
	body  *cp.Body
	shape *cp.Shape
}

func NewTouchWorld(pointer Pointer) *TouchWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &TouchWorld{space: space, pointer: pointer}
}

// Add registers a circle of radius r centred on (x, y).
func (w *TouchWorld) Add(x, y, r float64, owner any) *TouchBody {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, r, cp.Vector{})
	shape.UserData = owner

	w.space.AddBody(body)
	w.space.AddShape(shape)
	shape.CacheBB()

	return &TouchBody{world: w, body: body, shape: shape}
}

// Update re-indexes moved circles. Call once per tick after bubbles move.
func (w *TouchWorld) Update() {
	w.space.Step(touchStep)
}

// Pointer returns the cursor the world tests against.
func (w *TouchWorld) Pointer() Pointer {
	return w.pointer
}

// Under returns the owner of the circle nearest to (x, y) that contains the
// point, or nil.
func (w *TouchWorld) Under(x, y float64) any {
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil || info.Distance > 0 {
		return nil
	}
	return info.Shape.UserData
}

// Move repositions and resizes the circle.
func (b *TouchBody) Move(x, y, r float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetPosition(cp.Vector{X: x, Y: y})
	if circle, ok := b.shape.Class.(*cp.Circle); ok && circle.Radius() != r {
		circle.SetRadius(r)
	}
	b.shape.CacheBB()
}

// Contains reports whether (x, y) lies inside the circle.
func (b *TouchBody) Contains(x, y float64) bool {
	if b == nil || b.shape == nil {
		return false
	}
	return b.shape.PointQuery(cp.Vector{X: x, Y: y}).Distance <= 0
}

// Touched reports whether the world's pointer is inside the circle.
func (b *TouchBody) Touched() bool {
	if b == nil || b.world == nil || b.world.pointer == nil {
		return false
	}
	return b.Contains(b.world.pointer.Cursor())
}

// Remove drops the circle from the world.
func (b *TouchBody) Remove() {
	if b == nil || b.body == nil {
		return
	}
	b.world.space.RemoveShape(b.shape)
	b.world.space.RemoveBody(b.body)
	b.body = nil
	b.shape = nil
}
