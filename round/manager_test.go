package round

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tonebubbles/common"
)

type fakeBubble struct {
	id       int
	deleted  bool
	touching bool
	playing  bool
	shrunk   bool
	updates  int
}

func (b *fakeBubble) Update()          { b.updates++ }
func (b *fakeBubble) Deleted() bool    { return b.deleted }
func (b *fakeBubble) ID() int          { return b.id }
func (b *fakeBubble) IsTouching() bool { return b.touching }
func (b *fakeBubble) OnlyShrink()      { b.shrunk = true }
func (b *fakeBubble) Playing() bool    { return b.playing }

type fakeSound struct {
	played   map[string]int
	releases int
}

func newFakeSound() *fakeSound { return &fakeSound{played: map[string]int{}} }

func (s *fakeSound) Play(name string) { s.played[name]++ }
func (s *fakeSound) ReleaseVoice()    { s.releases++ }

type fakeHealth struct {
	lives int
	goalX float64
}

func (h *fakeHealth) Update()               {}
func (h *fakeHealth) Draw(*ebiten.Image)    {}
func (h *fakeHealth) SetNewGoalX(x float64) { h.goalX = x }
func (h *fakeHealth) Damage() int           { h.lives--; return h.lives }

type harness struct {
	m       *Manager
	sound   *fakeSound
	health  *fakeHealth
	spawned []*fakeBubble
	tones   []string
	// prepare runs on every bubble the factory builds
	prepare func(*fakeBubble)
}

func quickTiming() *Timing {
	t := DefaultTiming()
	t.StartTicks = 2
	t.StartBreakTicks = 0
	t.WaveBreakTicks = 3
	t.LevelBreakTicks = 5
	return &t
}

func newHarness(t *testing.T, cfg Config, timing *Timing) *harness {
	t.Helper()
	h := &harness{sound: newFakeSound()}
	m, err := New(cfg, Options{
		Rand:   common.NewRand(42),
		Sound:  h.sound,
		Timing: timing,
		NewBubble: func(x, y float64, tone string) Bubble {
			b := &fakeBubble{id: len(h.spawned) + 1}
			if h.prepare != nil {
				h.prepare(b)
			}
			h.spawned = append(h.spawned, b)
			h.tones = append(h.tones, tone)
			return b
		},
		NewHealthBar: func(maxLives int) HealthIndicator {
			h.health = &fakeHealth{lives: maxLives}
			return h.health
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.m = m
	return h
}

func (h *harness) runUntil(t *testing.T, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		h.m.Update()
	}
	if !done() {
		t.Fatalf("condition not reached within %d ticks (phase %s level %d wave %d)", limit, h.m.Phase(), h.m.Level(), h.m.Wave())
	}
}

func singleBubbleConfig() Config {
	return Config{
		FallingSpeed:  1,
		MaxLives:      3,
		ToneRange:     []string{"A4"},
		WaveCount:     1,
		LevelCount:    1,
		MinBubbles:    1,
		MaxBubbles:    1,
		MinSpawnDelay: 0,
		MaxSpawnDelay: 0,
		MinSpawnReach: 100,
		MaxSpawnReach: 100,
	}
}

func TestSingleBubbleRound(t *testing.T) {
	h := newHarness(t, singleBubbleConfig(), quickTiming())

	if h.m.Phase() != PhaseInitializing {
		t.Fatalf("expected initializing, got %s", h.m.Phase())
	}
	h.m.Update()
	h.m.Update()
	if h.m.StartDone() || len(h.spawned) != 0 {
		t.Fatalf("nothing should happen during the start countdown")
	}

	h.m.Update()
	if !h.m.StartDone() || h.m.Phase() != PhaseActive {
		t.Fatalf("expected active after countdown, got %s", h.m.Phase())
	}
	if len(h.spawned) != 1 {
		t.Fatalf("expected exactly one bubble on the first eligible tick, got %d", len(h.spawned))
	}
	if h.tones[0] != "A4" {
		t.Fatalf("unexpected tone %q", h.tones[0])
	}

	for i := 0; i < 5; i++ {
		h.m.Update()
	}
	if len(h.spawned) != 1 || h.m.Finishing() {
		t.Fatalf("round should wait on the live bubble: spawned=%d finishing=%v", len(h.spawned), h.m.Finishing())
	}

	h.spawned[0].deleted = true
	h.m.Update()
	if !h.m.Finishing() || h.m.Phase() != PhaseFinishing {
		t.Fatalf("expected finishing on the tick after the bubble was deleted, got %s", h.m.Phase())
	}
	if h.sound.played[CueGameFinish] != 1 {
		t.Fatalf("expected the finish cue once, got %d", h.sound.played[CueGameFinish])
	}
	if h.health.goalX != common.BaseWidth+60 {
		t.Fatalf("health bar should head off-screen, goal %v", h.health.goalX)
	}
	if h.m.ToneMenu().GoalX() != -100 {
		t.Fatalf("tone menu should head off-screen, goal %v", h.m.ToneMenu().GoalX())
	}

	h.runUntil(t, 500, func() bool { return !h.m.Ongoing() })
	if h.m.Phase() != PhaseEnded || h.m.Outcome() != OutcomeCleared {
		t.Fatalf("expected ended/cleared, got %s/%s", h.m.Phase(), h.m.Outcome())
	}

	updates := h.spawned[0].updates
	h.m.Update()
	if h.m.Ongoing() || h.spawned[0].updates != updates {
		t.Fatalf("ended round should be inert")
	}
}

func TestWaveAndLevelProgression(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.WaveCount = 2
	cfg.LevelCount = 2
	h := newHarness(t, cfg, quickTiming())
	h.prepare = func(b *fakeBubble) { b.deleted = true }

	type stage struct{ level, wave int }
	var seen []stage
	record := func() {
		s := stage{h.m.Level(), h.m.Wave()}
		if len(seen) == 0 || seen[len(seen)-1] != s {
			seen = append(seen, s)
		}
	}

	for i := 0; i < 500 && !h.m.Finishing(); i++ {
		record()
		h.m.Update()
	}
	if !h.m.Finishing() {
		t.Fatalf("round never reached finishing")
	}

	want := []stage{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	if len(seen) != len(want) {
		t.Fatalf("stages %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("stages %v, want %v", seen, want)
		}
	}
	if h.m.Wave() != 1 || h.m.Level() != 2 {
		t.Fatalf("final level/wave %d/%d", h.m.Level(), h.m.Wave())
	}
	if len(h.spawned) != 4 {
		t.Fatalf("expected one bubble per wave, got %d", len(h.spawned))
	}
	if h.sound.played[CueWaveBeat] != 2 {
		t.Fatalf("expected a wave beat per level, got %d", h.sound.played[CueWaveBeat])
	}

	h.runUntil(t, 500, func() bool { return h.m.Phase() == PhaseEnded })
}

func TestLevelBreakBlocksSpawning(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.LevelCount = 2
	timing := quickTiming()
	timing.LevelBreakTicks = 20
	h := newHarness(t, cfg, timing)
	h.prepare = func(b *fakeBubble) { b.deleted = true }

	h.runUntil(t, 100, func() bool { return h.m.Level() == 2 })
	spawned := len(h.spawned)
	for i := 0; i < 19; i++ {
		h.m.Update()
	}
	if len(h.spawned) != spawned {
		t.Fatalf("spawned during the level break")
	}
	h.runUntil(t, 10, func() bool { return len(h.spawned) > spawned })
}

func TestFirstTouchWins(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.MinBubbles, cfg.MaxBubbles = 3, 3
	h := newHarness(t, cfg, quickTiming())
	h.prepare = func(b *fakeBubble) { b.touching = b.id > 1 }

	h.runUntil(t, 20, func() bool { return len(h.spawned) == 3 })
	h.m.Update()

	id, ok := h.m.Touched()
	if !ok || id != 2 {
		t.Fatalf("expected bubble 2 touched first, got %d (%v)", id, ok)
	}

	for _, b := range h.spawned {
		b.touching = false
	}
	h.m.Update()
	if _, ok := h.m.Touched(); ok {
		t.Fatalf("touch should clear once nothing is touched")
	}
}

func TestReapDoesNotSkipOrRepeat(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.MinBubbles, cfg.MaxBubbles = 4, 4
	h := newHarness(t, cfg, quickTiming())

	h.runUntil(t, 20, func() bool { return len(h.spawned) == 4 })
	h.m.Update()

	before := make([]int, len(h.spawned))
	for i, b := range h.spawned {
		before[i] = b.updates
	}
	h.spawned[1].deleted = true
	h.spawned[1].playing = true
	h.spawned[2].deleted = true

	h.m.Update()

	for _, i := range []int{0, 3} {
		if got := h.spawned[i].updates - before[i]; got != 1 {
			t.Fatalf("bubble %d updated %d times", i+1, got)
		}
	}
	for _, i := range []int{1, 2} {
		if h.spawned[i].updates != before[i] {
			t.Fatalf("deleted bubble %d was updated", i+1)
		}
	}
	if h.sound.releases != 1 {
		t.Fatalf("expected one voice release, got %d", h.sound.releases)
	}
	if got := len(h.m.Bubbles()); got != 2 {
		t.Fatalf("expected 2 live bubbles, got %d", got)
	}
}

func TestFinishingShrinksBubbles(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.MaxLives = 1
	h := newHarness(t, cfg, quickTiming())

	h.runUntil(t, 20, func() bool { return len(h.spawned) == 1 })
	h.m.Hurt()

	if !h.m.Finishing() || h.m.Outcome() != OutcomeFailed {
		t.Fatalf("losing the last life should fail the round, got %s/%s", h.m.Phase(), h.m.Outcome())
	}
	if !h.spawned[0].shrunk {
		t.Fatalf("live bubble should be told to shrink")
	}
	if h.sound.played[CueHurt] != 1 {
		t.Fatalf("expected the hurt cue")
	}

	h.m.Hurt()
	if h.health.lives != 0 {
		t.Fatalf("hurt during finishing should be ignored, lives=%d", h.health.lives)
	}
}

func TestHurtOpacityHasNoFloor(t *testing.T) {
	h := newHarness(t, singleBubbleConfig(), quickTiming())
	h.runUntil(t, 20, func() bool { return h.m.StartDone() })

	h.m.Hurt()
	if h.m.HurtOpacity() != 0.4 {
		t.Fatalf("expected flash opacity 0.4, got %v", h.m.HurtOpacity())
	}
	if h.health.lives != 2 {
		t.Fatalf("expected a life lost, got %d", h.health.lives)
	}
	for i := 0; i < 60; i++ {
		h.m.Update()
	}
	if h.m.HurtOpacity() >= 0 {
		t.Fatalf("hurt opacity should keep falling past zero, got %v", h.m.HurtOpacity())
	}
}

func TestLevelAnnouncement(t *testing.T) {
	timing := DefaultTiming()
	timing.StartTicks = 0
	h := newHarness(t, singleBubbleConfig(), &timing)

	h.m.Update()
	if count, _ := h.m.LevelText(); count != 1 {
		t.Fatalf("expected LEVEL 1 first, got %d", count)
	}
	for i := 0; i < 40; i++ {
		h.m.Update()
	}
	if _, opacity := h.m.LevelText(); opacity <= 0 {
		t.Fatalf("announcement should be fading in")
	}

	h.runUntil(t, 200, func() bool { count, _ := h.m.LevelText(); return count == 2 })
	if h.sound.played[CueLevelBeat] != 1 {
		t.Fatalf("expected one level beat, got %d", h.sound.played[CueLevelBeat])
	}
	if len(h.spawned) != 0 {
		t.Fatalf("spawned during the start break")
	}

	h.runUntil(t, 100, func() bool { return len(h.spawned) == 1 })
	if _, opacity := h.m.LevelText(); opacity != 0 {
		t.Fatalf("announcement should be gone once spawning, got %v", opacity)
	}
}

func TestSharpTonesAreSkipped(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.ToneRange = []string{"C#4"}
	cfg.MinBubbles, cfg.MaxBubbles = 3, 3
	h := newHarness(t, cfg, quickTiming())

	h.runUntil(t, 50, func() bool { return h.m.Finishing() })
	if len(h.spawned) != 0 {
		t.Fatalf("sharp tones should not spawn bubbles")
	}
	if h.m.SkippedSpawns() != 3 {
		t.Fatalf("expected 3 skipped spawns, got %d", h.m.SkippedSpawns())
	}
}

func TestWantOctave(t *testing.T) {
	cfg := singleBubbleConfig()
	cfg.WantOctave = true
	cfg.MinBubbles, cfg.MaxBubbles = 20, 20
	h := newHarness(t, cfg, quickTiming())

	h.runUntil(t, 100, func() bool { return len(h.spawned) == 20 })
	for _, tone := range h.tones {
		if len(tone) != 2 || tone[0] != 'A' || tone[1] < '3' || tone[1] > '5' {
			t.Fatalf("unexpected tone %q", tone)
		}
	}
}

func TestPopAddsParticles(t *testing.T) {
	h := newHarness(t, singleBubbleConfig(), quickTiming())
	h.runUntil(t, 20, func() bool { return h.m.StartDone() })

	h.m.Pop(100, 100, "A4")
	if h.sound.played[CuePop] != 1 {
		t.Fatalf("expected the pop cue")
	}
	if len(h.m.particles) == 0 {
		t.Fatalf("expected sparks")
	}
	h.runUntil(t, 200, func() bool { return len(h.m.particles) == 0 })
}
