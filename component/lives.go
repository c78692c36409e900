package component

// Lives is a whole-number life counter for the player.
type Lives struct {
	Max     int
	Current int
}

// NewLives creates a full Lives counter. Non-positive max becomes 1.
func NewLives(max int) *Lives {
	if max <= 0 {
		max = 1
	}
	return &Lives{Max: max, Current: max}
}

// Lose takes one life away and returns how many remain.
func (l *Lives) Lose() int {
	if l == nil || l.Current <= 0 {
		return 0
	}
	l.Current--
	return l.Current
}
