package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys is the held-key view the tone menu reads each tick.
type Keys interface {
	// Increase is the "move selection down" key (X).
	Increase() bool
	// Decrease is the "move selection up" key (Z).
	Decrease() bool
	// Modifier turns a natural selection into its sharp/flat neighbour (Shift).
	Modifier() bool
}

// Pointer is the cursor view bubbles use to decide whether they are touched
// or clicked.
type Pointer interface {
	Cursor() (x, y float64)
	Clicked() bool
}

// Input holds the current keyboard and mouse state for one tick.
type Input struct {
	// IncreaseHeld is true while X (or the gamepad's lower face button) is down.
	IncreaseHeld bool
	// DecreaseHeld is true while Z (or the gamepad's upper face button) is down.
	DecreaseHeld bool
	// ModifierHeld is true while either Shift (or the left bumper) is down.
	ModifierHeld bool
	// PausePressed is true on the frame Escape / Start was pressed.
	PausePressed bool
	// MouseX/Y are the cursor position in screen coordinates.
	MouseX float64
	MouseY float64
	// MouseLeftPressed is true on the frame the left mouse button was pressed.
	MouseLeftPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls ebiten for the current frame.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.MouseX = float64(mx)
	i.MouseY = float64(my)

	i.IncreaseHeld = ebiten.IsKeyPressed(ebiten.KeyX)
	i.DecreaseHeld = ebiten.IsKeyPressed(ebiten.KeyZ)
	i.ModifierHeld = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	i.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		i.IncreaseHeld = i.IncreaseHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		i.DecreaseHeld = i.DecreaseHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightTop)
		i.ModifierHeld = i.ModifierHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontTopLeft)
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
}

func (i *Input) Increase() bool { return i.IncreaseHeld }
func (i *Input) Decrease() bool { return i.DecreaseHeld }
func (i *Input) Modifier() bool { return i.ModifierHeld }

func (i *Input) Cursor() (float64, float64) { return i.MouseX, i.MouseY }
func (i *Input) Clicked() bool              { return i.MouseLeftPressed }
