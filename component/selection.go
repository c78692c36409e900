package component

// Step is the index change produced by one SelectionInput update.
type Step int

const (
	StepNone     Step = 0
	StepDecrease Step = -1
	StepIncrease Step = 1
)

// SelectionInput turns held key state into discrete index steps: one step per
// press, however long the key stays down.
type SelectionInput struct {
	Index int
	Count int

	held     bool
	lastHeld Step
}

func NewSelectionInput(count int) SelectionInput {
	return SelectionInput{Count: count}
}

// Held reports whether a press is still waiting for its release.
func (s *SelectionInput) Held() bool {
	return s != nil && s.held
}

// Update consumes this tick's key state. Increase is evaluated first; an
// active but blocked increase still shadows decrease for the tick.
func (s *SelectionInput) Update(increase, decrease bool) Step {
	if s == nil {
		return StepNone
	}

	if s.held {
		if !increase && s.lastHeld == StepIncrease {
			s.held = false
		} else if !decrease && s.lastHeld == StepDecrease {
			s.held = false
		}
		return StepNone
	}

	if increase {
		if s.Index+1 < s.Count {
			s.Index++
			s.held = true
			s.lastHeld = StepIncrease
			return StepIncrease
		}
	} else if decrease {
		if s.Index-1 > -1 {
			s.Index--
			s.held = true
			s.lastHeld = StepDecrease
			return StepDecrease
		}
	}
	return StepNone
}
