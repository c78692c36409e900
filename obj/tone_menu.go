package obj

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/component"
)

const (
	toneMenuStartX = -40
	toneMenuRestX  = 10
)

var (
	toneMenuColor   = color.NRGBA{R: 0xcc, G: 0xba, B: 0xf7, A: 0xff}
	toneCursorColor = color.NRGBA{R: 0xf5, G: 0xc6, B: 0x90, A: 0xff}
)

// ToneList reduces a tone range to the natural letters the menu offers.
// Sharps and flats collapse onto their letter; the modifier key picks them.
func ToneList(toneRange []string) []string {
	out := make([]string, 0, len(toneRange))
	seen := make(map[string]bool, len(toneRange))
	for _, tone := range toneRange {
		if tone == "" {
			continue
		}
		note := tone[:1]
		if seen[note] {
			continue
		}
		seen[note] = true
		out = append(out, note)
	}
	return out
}

// ToneMenu is the vertical list of selectable notes on the left edge of the
// screen. The container slides in from off-screen and the cursor glides to
// the selected cell.
type ToneMenu struct {
	tones []string
	keys  Keys

	selection component.SelectionInput
	container component.GoalMotion
	cursor    component.GoalMotion

	width float64
	y     float64
}

// NewToneMenu builds the menu for a round's tone range.
func NewToneMenu(toneRange []string, keys Keys) *ToneMenu {
	tones := ToneList(toneRange)
	width := 100 - float64(len(tones))*8
	top := common.BaseHeight/2 - (width/2)*float64(len(tones))

	m := &ToneMenu{
		tones:     tones,
		keys:      keys,
		selection: component.NewSelectionInput(len(tones)),
		container: component.NewGoalMotion(toneMenuStartX, component.ContainerTravel),
		cursor:    component.NewGoalMotion(top, component.CursorTravel),
		width:     width,
		y:         top,
	}
	m.SetNewGoalContainer(toneMenuRestX)
	return m
}

// Tones returns the deduplicated natural letters, top to bottom.
func (m *ToneMenu) Tones() []string {
	return append([]string(nil), m.tones...)
}

// Selected returns the highlighted letter. It changes on the tick the index
// changes, before the cursor animation settles.
func (m *ToneMenu) Selected() string {
	if len(m.tones) == 0 {
		return ""
	}
	return m.tones[m.selection.Index]
}

// Index returns the selected row.
func (m *ToneMenu) Index() int {
	return m.selection.Index
}

// Modifier reports whether the sharp/flat modifier is held.
func (m *ToneMenu) Modifier() bool {
	return m.keys != nil && m.keys.Modifier()
}

func (m *ToneMenu) SetNewGoalContainer(x float64) {
	m.container.SetGoal(x)
}

func (m *ToneMenu) SetNewGoalCursor(y float64) {
	m.cursor.SetGoal(y)
}

// X is the container's current horizontal position.
func (m *ToneMenu) X() float64 { return m.container.Position }

// GoalX is the container's current horizontal goal.
func (m *ToneMenu) GoalX() float64 { return m.container.Goal }

// CursorY is the cursor's current vertical position.
func (m *ToneMenu) CursorY() float64 { return m.cursor.Position }

// CursorGoalY is the cursor's current vertical goal.
func (m *ToneMenu) CursorGoalY() float64 { return m.cursor.Goal }

// CellY returns the top of the given row.
func (m *ToneMenu) CellY(index int) float64 {
	return m.y + float64(index)*m.width
}

func (m *ToneMenu) Update() {
	m.updateSelection()
	m.cursor.Advance()
	m.container.Advance()
}

func (m *ToneMenu) updateSelection() {
	if m.keys == nil {
		return
	}
	bareY := m.CellY(m.selection.Index)
	switch m.selection.Update(m.keys.Increase(), m.keys.Decrease()) {
	case component.StepIncrease:
		m.SetNewGoalCursor(bareY + m.width)
	case component.StepDecrease:
		m.SetNewGoalCursor(bareY - m.width)
	}
}

func (m *ToneMenu) Draw(screen *ebiten.Image) {
	if screen == nil || len(m.tones) == 0 {
		return
	}

	x := float32(m.container.Position)
	w := float32(m.width)
	fill := withAlpha(toneMenuColor, 0.5)
	stroke := withAlpha(toneMenuColor, 0.9)

	for i, tone := range m.tones {
		y := float32(m.CellY(i))
		vector.DrawFilledRect(screen, x, y, w, w, fill, false)
		vector.StrokeRect(screen, x, y, w, w, 4, stroke, false)

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(x+w/2), float64(y+w/2))
		op.PrimaryAlign = ebtext.AlignCenter
		op.SecondaryAlign = ebtext.AlignCenter
		op.ColorScale.ScaleWithColor(toneMenuColor)
		ebtext.Draw(screen, tone, labelFace, op)
	}

	vector.StrokeRect(screen, x, float32(m.cursor.Position), w, w, 4, toneCursorColor, false)
}

func (m *ToneMenu) String() string {
	return fmt.Sprintf("ToneMenu{%v index=%d x=%.1f}", m.tones, m.selection.Index, m.container.Position)
}
