package round

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tonebubbles/common"
)

// Ramp is a compiled tengo script that narrows the bubble count range as the
// round goes on. The script reads level, wave, min_bubbles and max_bubbles
// and may rewrite the last two.
type Ramp struct {
	name     string
	compiled *tengo.Compiled
}

// NewRamp compiles src. name is only used in log output.
func NewRamp(name string, src []byte) (*Ramp, error) {
	script := tengo.NewScript(src)
	_ = script.Add("level", 1)
	_ = script.Add("wave", 1)
	_ = script.Add("min_bubbles", 0)
	_ = script.Add("max_bubbles", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("round: compile ramp %s: %w", name, err)
	}
	return &Ramp{name: name, compiled: compiled}, nil
}

// Name returns the script name the ramp was built from.
func (r *Ramp) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Eval runs the script for the given position in the round.
func (r *Ramp) Eval(level, wave, lo, hi int) (int, int, error) {
	if r == nil || r.compiled == nil {
		return lo, hi, nil
	}
	for name, v := range map[string]int{
		"level":       level,
		"wave":        wave,
		"min_bubbles": lo,
		"max_bubbles": hi,
	} {
		if err := r.compiled.Set(name, v); err != nil {
			return lo, hi, err
		}
	}
	if err := r.compiled.Run(); err != nil {
		return lo, hi, err
	}
	return r.compiled.Get("min_bubbles").Int(), r.compiled.Get("max_bubbles").Int(), nil
}

// Bounds is Eval clamped into [lo, hi]. Script errors are logged and the
// configured range is returned.
func (r *Ramp) Bounds(level, wave, lo, hi int) (int, int) {
	gotLo, gotHi, err := r.Eval(level, wave, lo, hi)
	if err != nil {
		log.Printf("round: ramp %s level=%d wave=%d error: %v", r.Name(), level, wave, err)
		return lo, hi
	}
	gotLo = common.ClampInt(gotLo, lo, hi)
	gotHi = common.ClampInt(gotHi, lo, hi)
	if gotLo > gotHi {
		gotLo = gotHi
	}
	return gotLo, gotHi
}
