package round

import "github.com/hajimehoshi/ebiten/v2"

// Entity is anything the manager updates and reaps once it flags itself.
type Entity interface {
	Update()
	Deleted() bool
}

// Bubble is a target the player answers.
type Bubble interface {
	Entity
	ID() int
	IsTouching() bool
	// OnlyShrink starts the bubble's exit animation. Called once when the
	// round starts finishing.
	OnlyShrink()
}

// Voiced is implemented by bubbles that may hold the hover voice. A playing
// bubble has its voice released when it is reaped.
type Voiced interface {
	Playing() bool
}

type drawer interface {
	Draw(screen *ebiten.Image)
}

// HealthIndicator shows the player's lives.
type HealthIndicator interface {
	Update()
	Draw(screen *ebiten.Image)
	SetNewGoalX(x float64)
	// Damage removes a life and returns how many remain.
	Damage() int
}

// Background is the goal-seeking backdrop (the sea).
type Background interface {
	Update()
	Draw(screen *ebiten.Image)
	SetNewGoal(y float64)
	Y() float64
	GoalY() float64
}

// Sound plays named cues.
type Sound interface {
	Play(name string)
	// ReleaseVoice stops the hover voice.
	ReleaseVoice()
}

// BubbleFactory builds a bubble for the given tone at (x, y).
type BubbleFactory func(x, y float64, tone string) Bubble

// Cue names passed to Sound.Play.
const (
	CueWaveBeat   = "wave_beat"
	CueLevelBeat  = "level_beat"
	CueGameFinish = "game_finish"
	CuePop        = "pop"
	CueHurt       = "hurt"
)

type nopSound struct{}

func (nopSound) Play(string)   {}
func (nopSound) ReleaseVoice() {}
