package round

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/obj"
	"golang.org/x/image/colornames"
)

const (
	popSparks = 10

	finishSeaY       = 800
	finishMenuX      = -100
	finishHealthOffX = 60
)

// Phase is the coarse state of a round.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseActive
	PhaseFinishing
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseActive:
		return "active"
	case PhaseFinishing:
		return "finishing"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Outcome is how a round finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCleared
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeFailed:
		return "failed"
	}
	return "none"
}

// Options wires a Manager to its collaborators. Nil fields get defaults.
type Options struct {
	Rand   common.Rand
	Keys   obj.Keys
	Sound  Sound
	Touch  *obj.TouchWorld
	Voice  obj.Voice
	Ramp   *Ramp
	Timing *Timing

	NewBubble     BubbleFactory
	NewHealthBar  func(maxLives int) HealthIndicator
	NewBackground func(level float64) Background

	// Debug logs state transitions.
	Debug bool
}

// Manager runs one round: the start delay, spawning waves, level and wave
// breaks, and the wind-down once the round is won or lost.
type Manager struct {
	cfg    Config
	timing Timing
	rng    common.Rand
	sound  Sound
	keys   obj.Keys
	ramp   *Ramp
	debug  bool

	newBubble     BubbleFactory
	newHealthBar  func(maxLives int) HealthIndicator
	newBackground func(level float64) Background
	arena         *obj.Arena

	ongoing   bool
	finishing bool
	startDone bool
	outcome   Outcome

	level int
	wave  int

	startCounter int
	breakDelay   int
	spawn        *Scheduler

	bubbles   []Bubble
	particles []Entity

	touchedID  int
	touchFound bool

	menu   *obj.ToneMenu
	health HealthIndicator
	sea    Background

	text levelText
	hurt float64

	skipped       int
	skippedLogged map[string]bool
}

// New validates cfg and returns a manager at the start of its
// initialization countdown.
func New(cfg Config, opts Options) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:           cfg,
		timing:        DefaultTiming(),
		rng:           opts.Rand,
		sound:         opts.Sound,
		keys:          opts.Keys,
		ramp:          opts.Ramp,
		debug:         opts.Debug,
		newBubble:     opts.NewBubble,
		newHealthBar:  opts.NewHealthBar,
		newBackground: opts.NewBackground,
		ongoing:       true,
		level:         1,
		wave:          1,
		skippedLogged: map[string]bool{},
	}
	if opts.Timing != nil {
		m.timing = *opts.Timing
	}
	if m.rng == nil {
		m.rng = common.NewRand(0)
	}
	if m.sound == nil {
		m.sound = nopSound{}
	}
	if m.newHealthBar == nil {
		m.newHealthBar = func(maxLives int) HealthIndicator { return obj.NewHealthBar(maxLives) }
	}
	if m.newBackground == nil {
		m.newBackground = func(level float64) Background { return obj.NewSea(level) }
	}

	m.arena = &obj.Arena{
		Touch:    opts.Touch,
		Selector: m,
		Voice:    opts.Voice,
		Touched:  m.isTouched,
		Hurt:     m.Hurt,
		Pop:      m.Pop,
		SeaLevel: m.seaLevel,
	}
	if m.newBubble == nil {
		m.newBubble = func(x, y float64, tone string) Bubble {
			return obj.NewNaturalBubble(x, y, tone, m.cfg.FallingSpeed, m.arena)
		}
	}

	m.startCounter = m.timing.StartTicks
	m.spawn = NewScheduler(m.rng, cfg.MinSpawnDelay, cfg.MaxSpawnDelay, m.bubbleBounds)
	m.text = newLevelText(m.timing)

	return m, nil
}

func (m *Manager) Phase() Phase {
	switch {
	case !m.startDone:
		return PhaseInitializing
	case !m.ongoing:
		return PhaseEnded
	case m.finishing:
		return PhaseFinishing
	}
	return PhaseActive
}

// Ongoing is false once the round has fully wound down.
func (m *Manager) Ongoing() bool   { return m.ongoing }
func (m *Manager) Finishing() bool { return m.finishing }
func (m *Manager) StartDone() bool { return m.startDone }
func (m *Manager) Level() int      { return m.level }
func (m *Manager) Wave() int       { return m.wave }
func (m *Manager) Outcome() Outcome {
	return m.outcome
}

// SkippedSpawns counts spawns drawn on a sharp/flat label. Those labels do
// not produce a bubble yet.
func (m *Manager) SkippedSpawns() int { return m.skipped }

// Touched returns this tick's touched bubble, the first one in spawn order
// that reported a touch.
func (m *Manager) Touched() (int, bool) {
	return m.touchedID, m.touchFound
}

// Bubbles returns the live bubbles in spawn order.
func (m *Manager) Bubbles() []Bubble {
	return append([]Bubble(nil), m.bubbles...)
}

// ToneMenu is nil until initialization completes.
func (m *Manager) ToneMenu() *obj.ToneMenu { return m.menu }

// HurtOpacity is the unclamped opacity of the hurt tint.
func (m *Manager) HurtOpacity() float64 { return m.hurt }

// LevelText returns the number the level announcement shows and its opacity.
func (m *Manager) LevelText() (int, float64) {
	return m.text.count, m.text.opacity
}

// Selected implements obj.Selector.
func (m *Manager) Selected() string {
	if m.menu == nil {
		return ""
	}
	return m.menu.Selected()
}

// Modifier implements obj.Selector.
func (m *Manager) Modifier() bool {
	return m.menu != nil && m.menu.Modifier()
}

func (m *Manager) Update() {
	if !m.ongoing {
		return
	}

	m.initializationCare()
	if m.startDone {
		m.reap()
	}
	m.updateRound()
	m.finishingCare()
	m.text.update(m.breakDelay > 0 && m.wave == 1, func() {
		m.sound.Play(CueLevelBeat)
	})

	if m.ongoing && m.startDone {
		m.updateContent()
	}
}

func (m *Manager) initializationCare() {
	if m.startDone {
		return
	}
	if m.startCounter > 0 {
		m.startCounter--
		return
	}

	m.sea = m.newBackground(SeaLevel)
	m.menu = obj.NewToneMenu(m.cfg.ToneRange, m.keys)
	m.health = m.newHealthBar(m.cfg.MaxLives)
	m.startDone = true
	m.breakDelay = m.timing.StartBreakTicks
	m.logf("started, menu %v", m.menu)
}

func (m *Manager) updateRound() {
	if !m.startDone || m.finishing {
		return
	}

	if m.breakDelay > 0 {
		m.breakDelay--
		return
	}

	if m.spawn.SpawningIn {
		if m.spawn.Tick() {
			m.spawnBubble()
		}
		return
	}

	if len(m.bubbles) > 0 {
		return
	}

	if m.wave+1 > m.cfg.WaveCount {
		m.wave = 1
		if m.level+1 > m.cfg.LevelCount {
			m.logf("level %d cleared, round finished", m.level)
			m.sound.Play(CueGameFinish)
			m.outcome = OutcomeCleared
			m.endRound()
			return
		}
		m.level++
		m.breakDelay = m.timing.LevelBreakTicks
		m.spawn.Restart()
		m.logf("level %d", m.level)
		return
	}

	m.sound.Play(CueWaveBeat)
	m.wave++
	m.breakDelay = m.timing.WaveBreakTicks
	m.spawn.Restart()
	m.logf("level %d wave %d", m.level, m.wave)
}

func (m *Manager) spawnBubble() {
	tone := m.cfg.ToneRange[common.RandRange(m.rng, 0, len(m.cfg.ToneRange)-1)]
	reach := common.RandRange(m.rng, m.cfg.MinSpawnReach, m.cfg.MaxSpawnReach)

	if len(tone) != 2 {
		m.skipped++
		if m.debug && !m.skippedLogged[tone] {
			m.skippedLogged[tone] = true
			log.Printf("round: no bubble for sharp/flat tone %q", tone)
		}
		return
	}

	if m.cfg.WantOctave {
		tone = tone[:1] + strconv.Itoa(common.RandRange(m.rng, 3, 5))
	}
	x := common.RandRange(m.rng, obj.NaturalBubbleRadius, common.BaseWidth-obj.NaturalBubbleRadius)
	if b := m.newBubble(float64(x), float64(reach), tone); b != nil {
		m.bubbles = append(m.bubbles, b)
	}
}

func (m *Manager) bubbleBounds() (int, int) {
	return m.ramp.Bounds(m.level, m.wave, m.cfg.MinBubbles, m.cfg.MaxBubbles)
}

// endRound sends everything off-screen. It runs once.
func (m *Manager) endRound() {
	if m.finishing {
		return
	}
	m.finishing = true

	for _, b := range m.bubbles {
		b.OnlyShrink()
	}
	m.health.SetNewGoalX(common.BaseWidth + finishHealthOffX)
	m.sea.SetNewGoal(finishSeaY)
	m.menu.SetNewGoalContainer(finishMenuX)
}

func (m *Manager) finishingCare() {
	if !m.finishing {
		return
	}
	if m.sea.Y() == m.sea.GoalY() && m.menu.X() == m.menu.GoalX() {
		m.ongoing = false
		m.logf("ended, outcome %s", m.outcome)
	}
}

// reap drops every flagged entity, releasing the hover voice of a playing
// bubble first.
func (m *Manager) reap() {
	m.particles = compact(m.particles, nil)
	m.bubbles = compact(m.bubbles, func(b Bubble) {
		if v, ok := b.(Voiced); ok && v.Playing() {
			m.sound.ReleaseVoice()
		}
	})
}

func compact[T Entity](entities []T, onRemove func(T)) []T {
	kept := entities[:0]
	for _, e := range entities {
		if e.Deleted() {
			if onRemove != nil {
				onRemove(e)
			}
			continue
		}
		kept = append(kept, e)
	}
	clear(entities[len(kept):])
	return kept
}

func (m *Manager) updateContent() {
	m.touchFound = false

	for _, p := range m.particles {
		p.Update()
	}

	for _, b := range m.bubbles {
		if !m.touchFound && b.IsTouching() {
			m.touchedID = b.ID()
			m.touchFound = true
		}
		b.Update()
	}

	m.health.Update()
	m.menu.Update()
	m.sea.Update()

	// No floor; Draw clamps.
	m.hurt -= m.timing.HurtDecay
}

func (m *Manager) isTouched(id int) bool {
	return m.touchFound && m.touchedID == id
}

func (m *Manager) seaLevel() float64 {
	if m.sea == nil {
		return SeaLevel
	}
	return m.sea.Y()
}

// Hurt costs the player a life. Losing the last one ends the round.
func (m *Manager) Hurt() {
	if !m.startDone || m.finishing || !m.ongoing {
		return
	}
	m.hurt = m.timing.HurtFlash
	m.sound.Play(CueHurt)
	if remaining := m.health.Damage(); remaining <= 0 {
		m.logf("out of lives at level %d wave %d", m.level, m.wave)
		m.outcome = OutcomeFailed
		m.endRound()
	}
}

// Pop plays the pop cue and throws sparks from (x, y).
func (m *Manager) Pop(x, y float64, tone string) {
	m.sound.Play(CuePop)
	for _, s := range obj.NewBurst(x, y, popSparks, m.rng) {
		m.AddParticle(s)
	}
	m.logf("popped %s", tone)
}

// AddParticle hands a short-lived effect to the manager to update and reap.
func (m *Manager) AddParticle(p Entity) {
	if p == nil {
		return
	}
	m.particles = append(m.particles, p)
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	m.text.draw(screen)

	if !m.ongoing || !m.startDone {
		return
	}

	for _, p := range m.particles {
		if d, ok := p.(drawer); ok {
			d.Draw(screen)
		}
	}
	for _, b := range m.bubbles {
		if d, ok := b.(drawer); ok {
			d.Draw(screen)
		}
	}
	m.sea.Draw(screen)
	m.menu.Draw(screen)
	m.health.Draw(screen)

	if alpha := common.Clamp(m.hurt, 0, 1); alpha > 0 {
		c := colornames.Crimson
		c.A = uint8(alpha * 255)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), premultiply(c), false)
	}
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func (m *Manager) logf(format string, args ...any) {
	if !m.debug {
		return
	}
	log.Printf("round: "+format, args...)
}
