package prefabs

import (
	"fmt"

	"github.com/milk9111/tonebubbles/round"
	"gopkg.in/yaml.v3"
)

// RangeSpec is an inclusive integer range.
type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingSpec overrides round pacing. Zero fields keep the defaults.
type TimingSpec struct {
	StartTicks      int     `yaml:"start_ticks"`
	StartBreakTicks int     `yaml:"start_break_ticks"`
	WaveBreakTicks  int     `yaml:"wave_break_ticks"`
	LevelBreakTicks int     `yaml:"level_break_ticks"`
	LevelTextPause  int     `yaml:"level_text_pause"`
	LevelTextFade   float64 `yaml:"level_text_fade"`
	HurtFlash       float64 `yaml:"hurt_flash"`
	HurtDecay       float64 `yaml:"hurt_decay"`
}

// RoundSpec is a round preset as written in prefabs/rounds.
type RoundSpec struct {
	Name         string     `yaml:"name"`
	FallingSpeed float64    `yaml:"falling_speed"`
	WantOctave   bool       `yaml:"want_octave"`
	MaxLives     int        `yaml:"max_lives"`
	ToneRange    []string   `yaml:"tone_range"`
	WaveCount    int        `yaml:"wave_count"`
	LevelCount   int        `yaml:"level_count"`
	Bubbles      RangeSpec  `yaml:"bubbles"`
	SpawnDelay   RangeSpec  `yaml:"spawn_delay"`
	SpawnReach   RangeSpec  `yaml:"spawn_reach"`
	Ramp         string     `yaml:"ramp"`
	Timing       TimingSpec `yaml:"timing"`
}

func LoadSpec[T any](data []byte, filename string) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadRoundSpec reads and validates a preset.
func LoadRoundSpec(name string) (*RoundSpec, error) {
	data, err := LoadRound(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := LoadSpec[RoundSpec](data, name)
	if err != nil {
		return nil, err
	}
	if err := spec.Config().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: round %s: %w", name, err)
	}
	return &spec, nil
}

func (s *RoundSpec) Config() round.Config {
	return round.Config{
		FallingSpeed:  s.FallingSpeed,
		WantOctave:    s.WantOctave,
		MaxLives:      s.MaxLives,
		ToneRange:     append([]string(nil), s.ToneRange...),
		WaveCount:     s.WaveCount,
		LevelCount:    s.LevelCount,
		MinBubbles:    s.Bubbles.Min,
		MaxBubbles:    s.Bubbles.Max,
		MinSpawnDelay: s.SpawnDelay.Min,
		MaxSpawnDelay: s.SpawnDelay.Max,
		MinSpawnReach: s.SpawnReach.Min,
		MaxSpawnReach: s.SpawnReach.Max,
	}
}

// Timing applies the preset's overrides to round.DefaultTiming.
func (s *RoundSpec) Timing() round.Timing {
	t := round.DefaultTiming()
	o := s.Timing
	overrideInt(&t.StartTicks, o.StartTicks)
	overrideInt(&t.StartBreakTicks, o.StartBreakTicks)
	overrideInt(&t.WaveBreakTicks, o.WaveBreakTicks)
	overrideInt(&t.LevelBreakTicks, o.LevelBreakTicks)
	overrideInt(&t.LevelTextPause, o.LevelTextPause)
	overrideFloat(&t.LevelTextFade, o.LevelTextFade)
	overrideFloat(&t.HurtFlash, o.HurtFlash)
	overrideFloat(&t.HurtDecay, o.HurtDecay)
	return t
}

// LoadRamp compiles the preset's ramp script. A preset without one returns
// a nil ramp, which leaves the bubble range untouched.
func (s *RoundSpec) LoadRamp() (*round.Ramp, error) {
	if s.Ramp == "" {
		return nil, nil
	}
	src, err := LoadScript(s.Ramp)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", s.Ramp, err)
	}
	return round.NewRamp(s.Ramp, src)
}

func overrideInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func overrideFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
