package round

import (
	"errors"
	"fmt"
)

// SeaLevel is where the sea settles once the round has started.
const SeaLevel = 700

// ErrInvalidConfig is returned by New when a Config breaks one of its
// invariants.
var ErrInvalidConfig = errors.New("round: invalid config")

// Config describes the round about to be played. It is not modified after
// construction.
type Config struct {
	// FallingSpeed is how many pixels a bubble falls per tick.
	FallingSpeed float64
	// WantOctave mixes random octaves into natural tones.
	WantOctave bool
	MaxLives   int
	// ToneRange is the ordered set of tone labels bubbles are drawn from.
	// Two-character labels are naturals ("A4"), longer ones sharps/flats.
	ToneRange []string

	WaveCount  int
	LevelCount int

	MinBubbles int
	MaxBubbles int

	MinSpawnDelay int
	MaxSpawnDelay int

	// Spawn reach is the distance from the top of the screen a bubble
	// appears at.
	MinSpawnReach int
	MaxSpawnReach int
}

// Validate reports the first broken invariant, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case len(c.ToneRange) == 0:
		return fmt.Errorf("%w: empty tone range", ErrInvalidConfig)
	case c.WaveCount < 1:
		return fmt.Errorf("%w: wave count %d", ErrInvalidConfig, c.WaveCount)
	case c.LevelCount < 1:
		return fmt.Errorf("%w: level count %d", ErrInvalidConfig, c.LevelCount)
	case c.MaxLives < 1:
		return fmt.Errorf("%w: max lives %d", ErrInvalidConfig, c.MaxLives)
	case c.MinBubbles < 0 || c.MinBubbles > c.MaxBubbles:
		return fmt.Errorf("%w: bubbles [%d, %d]", ErrInvalidConfig, c.MinBubbles, c.MaxBubbles)
	case c.MinSpawnDelay < 0 || c.MinSpawnDelay > c.MaxSpawnDelay:
		return fmt.Errorf("%w: spawn delay [%d, %d]", ErrInvalidConfig, c.MinSpawnDelay, c.MaxSpawnDelay)
	case c.MinSpawnReach > c.MaxSpawnReach:
		return fmt.Errorf("%w: spawn reach [%d, %d]", ErrInvalidConfig, c.MinSpawnReach, c.MaxSpawnReach)
	case c.FallingSpeed < 0:
		return fmt.Errorf("%w: falling speed %v", ErrInvalidConfig, c.FallingSpeed)
	}
	for i, tone := range c.ToneRange {
		if len(tone) < 2 {
			return fmt.Errorf("%w: tone %d %q", ErrInvalidConfig, i, tone)
		}
	}
	return nil
}

// Timing holds the tick counts that pace a round.
type Timing struct {
	// StartTicks elapse before the UI is built.
	StartTicks int
	// StartBreakTicks is the pause after the UI is built, long enough for
	// the first level announcement.
	StartBreakTicks int
	WaveBreakTicks  int
	LevelBreakTicks int

	// LevelTextPause is how long the level announcement holds at full opacity.
	LevelTextPause int
	// LevelTextFade is the per-tick opacity change of the level announcement.
	LevelTextFade float64

	// HurtFlash is the opacity the hurt tint jumps to on a lost life.
	HurtFlash float64
	HurtDecay float64
}

func DefaultTiming() Timing {
	return Timing{
		StartTicks:      50,
		StartBreakTicks: 200,
		WaveBreakTicks:  30,
		LevelBreakTicks: 200,
		LevelTextPause:  90,
		LevelTextFade:   0.02,
		HurtFlash:       0.4,
		HurtDecay:       0.01,
	}
}
