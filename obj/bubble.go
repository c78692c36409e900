package obj

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	NaturalBubbleRadius = 40

	bubbleGrowStep   = 4
	bubbleShrinkStep = 3
)

var (
	naturalBubbleColor = color.NRGBA{R: 0x9f, G: 0xd8, B: 0xf5, A: 0xff}
	bubbleHoverColor   = color.NRGBA{R: 0xf5, G: 0xc6, B: 0x90, A: 0xff}
)

// Selector is the current answer the player has dialled in.
type Selector interface {
	Selected() string
	Modifier() bool
}

// Voice is the single synth voice that sounds a bubble's tone while hovered.
type Voice interface {
	Start(tone string)
	Release()
}

// Arena is everything a bubble needs from the round around it.
type Arena struct {
	Touch    *TouchWorld
	Selector Selector
	Voice    Voice
	// Touched reports whether the given bubble is this tick's touched bubble.
	Touched func(id int) bool
	// Hurt costs the player a life.
	Hurt func()
	// Pop is called when the player answers a bubble correctly.
	Pop func(x, y float64, tone string)
	// SeaLevel is the water line bubbles must not reach.
	SeaLevel func() float64
}

var nextBubbleID atomic.Int64

// NaturalBubble is a falling target labelled with a natural tone ("A4").
type NaturalBubble struct {
	id     int
	tone   string
	x, y   float64
	radius float64
	speed  float64

	arena *Arena
	body  *TouchBody

	touching  bool
	playing   bool
	shrinking bool
	deleted   bool
}

// NewNaturalBubble creates a bubble that grows in at (x, y) and falls at speed
// pixels per tick.
func NewNaturalBubble(x, y float64, tone string, speed float64, arena *Arena) *NaturalBubble {
	b := &NaturalBubble{
		id:    int(nextBubbleID.Add(1)),
		tone:  tone,
		x:     x,
		y:     y,
		speed: speed,
		arena: arena,
	}
	if arena != nil && arena.Touch != nil {
		b.body = arena.Touch.Add(x, y, b.radius, b)
	}
	return b
}

func (b *NaturalBubble) ID() int             { return b.id }
func (b *NaturalBubble) Tone() string        { return b.tone }
func (b *NaturalBubble) Deleted() bool       { return b.deleted }
func (b *NaturalBubble) Playing() bool       { return b.playing }
func (b *NaturalBubble) Shrinking() bool     { return b.shrinking }
func (b *NaturalBubble) Radius() float64     { return b.radius }
func (b *NaturalBubble) Pos() (x, y float64) { return b.x, b.y }

// IsTouching reports whether the cursor is over the bubble.
func (b *NaturalBubble) IsTouching() bool {
	if b.deleted || b.shrinking {
		return false
	}
	return b.body.Touched()
}

// OnlyShrink stops the bubble and plays it out.
func (b *NaturalBubble) OnlyShrink() {
	b.shrinking = true
	b.stopVoice()
}

func (b *NaturalBubble) Update() {
	if b.deleted {
		return
	}

	if b.shrinking {
		b.radius -= bubbleShrinkStep
		if b.radius <= 0 {
			b.radius = 0
			b.remove()
			return
		}
		b.body.Move(b.x, b.y, b.radius)
		return
	}

	if b.radius < NaturalBubbleRadius {
		b.radius = min(b.radius+bubbleGrowStep, NaturalBubbleRadius)
	}
	b.y += b.speed
	b.body.Move(b.x, b.y, b.radius)

	b.touching = b.IsTouching()
	b.updateVoice()

	if b.arena == nil {
		return
	}

	if b.touching && b.clicked() && (b.arena.Touched == nil || b.arena.Touched(b.id)) {
		b.answer()
		if b.deleted {
			return
		}
	}

	if b.arena.SeaLevel != nil && b.y+b.radius >= b.arena.SeaLevel() {
		if b.arena.Hurt != nil {
			b.arena.Hurt()
		}
		b.remove()
	}
}

func (b *NaturalBubble) clicked() bool {
	if b.arena.Touch == nil || b.arena.Touch.Pointer() == nil {
		return false
	}
	return b.arena.Touch.Pointer().Clicked()
}

// answer judges the player's selection against the bubble. Natural bubbles
// want the bare letter with no modifier.
func (b *NaturalBubble) answer() {
	sel := b.arena.Selector
	if sel == nil {
		return
	}
	if sel.Selected() == b.tone[:1] && !sel.Modifier() {
		if b.arena.Pop != nil {
			b.arena.Pop(b.x, b.y, b.tone)
		}
		b.remove()
		return
	}
	if b.arena.Hurt != nil {
		b.arena.Hurt()
	}
}

func (b *NaturalBubble) updateVoice() {
	if b.arena == nil || b.arena.Voice == nil {
		return
	}
	switch {
	case b.touching && !b.playing:
		b.arena.Voice.Start(b.tone)
		b.playing = true
	case !b.touching && b.playing:
		b.stopVoice()
	}
}

func (b *NaturalBubble) stopVoice() {
	if !b.playing {
		return
	}
	if b.arena != nil && b.arena.Voice != nil {
		b.arena.Voice.Release()
	}
	b.playing = false
}

// remove flags the bubble for the round to reap. A sounding voice is left
// for the reaper to release.
func (b *NaturalBubble) remove() {
	b.deleted = true
	b.body.Remove()
}

func (b *NaturalBubble) Draw(screen *ebiten.Image) {
	if screen == nil || b.deleted || b.radius <= 0 {
		return
	}
	fill := withAlpha(naturalBubbleColor, 0.35)
	stroke := color.Color(naturalBubbleColor)
	if b.touching {
		stroke = bubbleHoverColor
	}
	cx, cy, r := float32(b.x), float32(b.y), float32(b.radius)
	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r, 3, stroke, true)

	if b.shrinking {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleWithColor(stroke)
	ebtext.Draw(screen, b.tone, labelFace, op)
}
