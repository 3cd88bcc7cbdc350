package program

import "math"

// deloadFactor is the fraction of the current weight kept after failing
// the hardest stage.
const deloadFactor = 0.85

// DefaultIncrement returns the per-progression weight bump: upper body
// lifts move in 2.5 kg / 5 lbs steps, lower body in 5 kg / 10 lbs.
func DefaultIncrement(muscleGroup MuscleGroup, unit Unit) float64 {
	if muscleGroup == MuscleGroupLower {
		if unit == UnitLbs {
			return 10
		}
		return 5
	}
	if unit == UnitLbs {
		return 5
	}
	return 2.5
}

// UnitIncrement is the smallest standard plate step of a unit system,
// used to snap computed weights to something loadable on a bar.
func UnitIncrement(unit Unit) float64 {
	if unit == UnitLbs {
		return 5
	}
	return 2.5
}

// MinBarWeight is the empty bar: the floor below which a deload never
// goes. Scales with the unit system (20 kg / 45 lbs).
func MinBarWeight(unit Unit) float64 {
	if unit == UnitLbs {
		return 45
	}
	return 20
}

func RoundToIncrement(weight float64, unit Unit) float64 {
	increment := UnitIncrement(unit)
	return math.Round(weight/increment) * increment
}

// DeloadWeight computes the post-deload working weight: 85% of the
// current weight, snapped to the unit's plate step, never below the
// empty bar.
func DeloadWeight(weight float64, unit Unit) float64 {
	deloaded := RoundToIncrement(weight*deloadFactor, unit)
	return math.Max(deloaded, MinBarWeight(unit))
}
