package component

import "testing"

type keyFrame struct {
	inc, dec bool
}

func TestSelectionInputOneStepPerPress(t *testing.T) {
	cases := []struct {
		name      string
		count     int
		start     int
		frames    []keyFrame
		wantIndex int
		wantSteps int
	}{
		{
			name:      "long_hold_moves_once",
			count:     4,
			frames:    repeatFrames(keyFrame{inc: true}, 20),
			wantIndex: 1,
			wantSteps: 1,
		},
		{
			name:  "press_release_press",
			count: 4,
			frames: append(append(append(
				repeatFrames(keyFrame{inc: true}, 3),
				keyFrame{}),
				repeatFrames(keyFrame{inc: true}, 3)...),
				keyFrame{}),
			wantIndex: 2,
			wantSteps: 2,
		},
		{
			name:      "clamped_at_top",
			count:     2,
			frames:    alternate(keyFrame{inc: true}, 6),
			wantIndex: 1,
			wantSteps: 1,
		},
		{
			name:      "clamped_at_bottom",
			count:     3,
			start:     1,
			frames:    alternate(keyFrame{dec: true}, 6),
			wantIndex: 0,
			wantSteps: 1,
		},
		{
			name:      "increase_wins_when_both_pressed",
			count:     3,
			start:     1,
			frames:    []keyFrame{{inc: true, dec: true}},
			wantIndex: 2,
			wantSteps: 1,
		},
		{
			name:      "blocked_increase_shadows_decrease",
			count:     3,
			start:     2,
			frames:    []keyFrame{{inc: true, dec: true}, {inc: true, dec: true}},
			wantIndex: 2,
			wantSteps: 0,
		},
		{
			name:      "other_key_release_does_not_unlock",
			count:     5,
			frames:    []keyFrame{{inc: true}, {inc: true, dec: false}, {inc: true, dec: true}, {inc: true}},
			wantIndex: 1,
			wantSteps: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSelectionInput(c.count)
			s.Index = c.start
			steps := 0
			for _, f := range c.frames {
				if step := s.Update(f.inc, f.dec); step != StepNone {
					steps++
				}
				if s.Index < 0 || s.Index >= c.count {
					t.Fatalf("index %d escaped [0,%d)", s.Index, c.count)
				}
			}
			if s.Index != c.wantIndex {
				t.Fatalf("expected index %d, got %d", c.wantIndex, s.Index)
			}
			if steps != c.wantSteps {
				t.Fatalf("expected %d steps, got %d", c.wantSteps, steps)
			}
		})
	}
}

func TestSelectionInputHoldAcrossWholeRange(t *testing.T) {
	s := NewSelectionInput(3)
	for i := 0; i < 50; i++ {
		s.Update(true, false)
	}
	if s.Index != 1 {
		t.Fatalf("holding should move exactly once, index=%d", s.Index)
	}
	if !s.Held() {
		t.Fatalf("expected held while key is down")
	}
	s.Update(false, false)
	if s.Held() {
		t.Fatalf("release should clear held")
	}
	if step := s.Update(true, false); step != StepIncrease || s.Index != 2 {
		t.Fatalf("second press should step, got %v index=%d", step, s.Index)
	}
}

func repeatFrames(f keyFrame, n int) []keyFrame {
	out := make([]keyFrame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

func alternate(f keyFrame, presses int) []keyFrame {
	out := make([]keyFrame, 0, presses*2)
	for i := 0; i < presses; i++ {
		out = append(out, f, keyFrame{})
	}
	return out
}
