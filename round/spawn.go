package round

import "github.com/milk9111/tonebubbles/common"

// Scheduler paces the spawn-in phase of a wave. Each phase emits Max bubbles,
// one every Counter ticks, then stops until Restart.
type Scheduler struct {
	Max        int
	Count      int
	Counter    int
	SpawningIn bool

	rng      common.Rand
	minDelay int
	maxDelay int
	bounds   func() (lo, hi int)
}

// NewScheduler returns a scheduler in its spawn-in phase. bounds supplies the
// inclusive range each phase's Max is drawn from.
func NewScheduler(rng common.Rand, minDelay, maxDelay int, bounds func() (lo, hi int)) *Scheduler {
	s := &Scheduler{
		SpawningIn: true,
		rng:        rng,
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		bounds:     bounds,
	}
	s.Max = s.rollMax()
	s.Counter = common.RandRange(rng, minDelay, maxDelay)
	return s
}

// Tick advances the scheduler and reports whether a bubble should be spawned
// this tick.
func (s *Scheduler) Tick() bool {
	if s == nil || !s.SpawningIn {
		return false
	}
	if s.Counter > 0 {
		s.Counter--
		return false
	}

	s.Counter = common.RandRange(s.rng, s.minDelay, s.maxDelay)
	if s.Count < s.Max {
		s.Count++
		return true
	}

	s.Count = 0
	s.Max = s.rollMax()
	s.SpawningIn = false
	return false
}

// Restart begins the next spawn-in phase.
func (s *Scheduler) Restart() {
	if s == nil {
		return
	}
	s.SpawningIn = true
}

func (s *Scheduler) rollMax() int {
	lo, hi := s.bounds()
	return common.RandRange(s.rng, lo, hi)
}
