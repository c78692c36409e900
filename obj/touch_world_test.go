package obj

import "testing"

type fakePointer struct {
	x, y    float64
	clicked bool
}

func (p *fakePointer) Cursor() (float64, float64) { return p.x, p.y }
func (p *fakePointer) Clicked() bool              { return p.clicked }

func TestTouchWorldContains(t *testing.T) {
	ptr := &fakePointer{x: 100, y: 100}
	w := NewTouchWorld(ptr)

	a := w.Add(100, 100, 20, "a")
	b := w.Add(300, 100, 20, "b")
	w.Update()

	if !a.Touched() {
		t.Fatalf("pointer at centre of a should touch it")
	}
	if b.Touched() {
		t.Fatalf("pointer is nowhere near b")
	}
	if got := w.Under(305, 95); got != "b" {
		t.Fatalf("expected b under (305,95), got %v", got)
	}
	if got := w.Under(200, 100); got != nil {
		t.Fatalf("expected nothing between circles, got %v", got)
	}

	a.Move(160, 100, 10)
	w.Update()
	if a.Touched() {
		t.Fatalf("a moved away and shrank; pointer should miss")
	}
	if !a.Contains(165, 100) {
		t.Fatalf("a should contain a point near its new centre")
	}

	b.Remove()
	w.Update()
	if got := w.Under(300, 100); got != nil {
		t.Fatalf("removed circle still answered queries: %v", got)
	}
	b.Remove()
}

func TestNaturalBubbleLifecycle(t *testing.T) {
	ptr := &fakePointer{x: 200, y: 110}
	hurts, pops := 0, 0
	arena := &Arena{
		Touch:    NewTouchWorld(ptr),
		Selector: NewToneMenu([]string{"A4", "B4"}, &fakeKeys{}),
		Touched:  func(int) bool { return true },
		Hurt:     func() { hurts++ },
		Pop:      func(float64, float64, string) { pops++ },
		SeaLevel: func() float64 { return 700 },
	}

	wrong := NewNaturalBubble(200, 100, "B4", 1, arena)
	for i := 0; i < 12; i++ {
		wrong.Update()
	}
	if !wrong.IsTouching() {
		t.Fatalf("bubble grown under the pointer should be touched")
	}
	ptr.clicked = true
	wrong.Update()
	ptr.clicked = false
	if hurts != 1 || wrong.Deleted() {
		t.Fatalf("wrong answer should hurt and keep the bubble: hurts=%d deleted=%v", hurts, wrong.Deleted())
	}

	right := NewNaturalBubble(600, 100, "A4", 1, arena)
	ptr.x, ptr.y = 600, 112
	for i := 0; i < 12; i++ {
		right.Update()
	}
	ptr.clicked = true
	right.Update()
	ptr.clicked = false
	if pops != 1 || !right.Deleted() {
		t.Fatalf("right answer should pop: pops=%d deleted=%v", pops, right.Deleted())
	}

	sinker := NewNaturalBubble(900, 600, "A4", 20, arena)
	for i := 0; i < 10 && !sinker.Deleted(); i++ {
		sinker.Update()
	}
	if !sinker.Deleted() || hurts != 2 {
		t.Fatalf("bubble reaching the sea should hurt and delete: hurts=%d deleted=%v", hurts, sinker.Deleted())
	}

	shrinker := NewNaturalBubble(100, 100, "A4", 0, arena)
	for i := 0; i < 10; i++ {
		shrinker.Update()
	}
	shrinker.OnlyShrink()
	for i := 0; i < 30 && !shrinker.Deleted(); i++ {
		shrinker.Update()
	}
	if !shrinker.Deleted() {
		t.Fatalf("shrinking bubble should delete itself")
	}
}
