package component

import (
	"math"

	"github.com/milk9111/tonebubbles/common"
)

// SnapThreshold is the distance (in position units) under which a goal
// motion lands exactly on its goal.
const SnapThreshold = 2.0

// Travel holds the two tuning knobs of a goal motion: how many ticks the
// initial velocity would need to cover the distance, and the divisor that
// turns the distance into a braking acceleration.
type Travel struct {
	Ticks        float64
	DecayDivisor float64
}

var (
	ContainerTravel = Travel{Ticks: 14, DecayDivisor: 500}
	CursorTravel    = Travel{Ticks: 5, DecayDivisor: 45}
)

// GoalParams computes the launch velocity and braking acceleration for a
// move from current to goal. The acceleration always opposes the velocity.
func GoalParams(current, goal float64, travel Travel) (velocity, accel float64) {
	dist := goal - current
	velocity = dist / travel.Ticks
	accel = (math.Abs(dist) / travel.DecayDivisor) * -common.Sign(velocity)
	return velocity, accel
}

// StepToward advances position by one tick. It reports done once position
// sits exactly on goal.
func StepToward(position, velocity, accel, goal float64) (float64, float64, bool) {
	if position == goal {
		return goal, velocity, true
	}

	before := goal - position
	position += velocity
	velocity += accel
	after := goal - position

	switch {
	case math.Abs(after) <= SnapThreshold:
		return goal, velocity, true
	case common.Sign(after) != common.Sign(before):
		// stepped over the goal
		return goal, velocity, true
	case common.Sign(velocity) != common.Sign(after):
		// braked to a stop (or reversed) short of the goal
		return goal, velocity, true
	}
	return position, velocity, false
}

// GoalMotion is a scalar that glides toward a goal with a decaying velocity
// and stops exactly on it.
type GoalMotion struct {
	Position float64
	Goal     float64
	Velocity float64
	Accel    float64
	Travel   Travel
}

// NewGoalMotion returns a motion resting at position.
func NewGoalMotion(position float64, travel Travel) GoalMotion {
	return GoalMotion{Position: position, Goal: position, Travel: travel}
}

// SetGoal retargets the motion, starting from wherever it currently is.
func (m *GoalMotion) SetGoal(goal float64) {
	if m == nil {
		return
	}
	m.Goal = goal
	m.Velocity, m.Accel = GoalParams(m.Position, goal, m.Travel)
}

// Advance moves the position by one tick.
func (m *GoalMotion) Advance() {
	if m == nil || m.Position == m.Goal {
		return
	}
	m.Position, m.Velocity, _ = StepToward(m.Position, m.Velocity, m.Accel, m.Goal)
	if m.Position == m.Goal {
		m.Velocity = 0
		m.Accel = 0
	}
}

// Arrived reports whether the position sits exactly on the goal.
func (m *GoalMotion) Arrived() bool {
	return m != nil && m.Position == m.Goal
}
