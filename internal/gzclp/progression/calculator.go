package progression

import (
	"fmt"

	"github.com/2beens/gzclp/internal/gzclp/program"
)

// Outcome is the verdict of one progression calculation: what kind of
// change to queue, where the record lands, and why.
type Outcome struct {
	Type      ChangeType    `json:"type"`
	NewWeight float64       `json:"newWeight"`
	NewStage  program.Stage `json:"newStage"`
	Success   bool          `json:"success"`
	Reason    string        `json:"reason"`
	AmrapReps *int          `json:"amrapReps,omitempty"`
}

// Calculate runs the GZCLP state machine for one performed exercise.
//
// T1/T2: hitting every prescribed set keeps the stage and adds the
// increment; missing advances the stage at the same weight; missing at
// the hardest stage deloads to 85% (snapped to the unit's plate step,
// floored at the empty bar) and resets to stage 0. T3: pass/fail rides
// solely on the final logged set reaching 25 reps - pass adds the
// increment, fail repeats the same weight. T3 never deloads.
//
// An unknown tier is an upstream bug and panics rather than guessing.
func Calculate(
	tier program.Tier,
	entry Entry,
	reps []int,
	muscleGroup program.MuscleGroup,
	unit program.Unit,
	customIncrement *float64,
) Outcome {
	switch tier {
	case program.TierT1, program.TierT2:
		return calculatePrimary(tier, entry, reps, muscleGroup, unit, customIncrement)
	case program.TierT3:
		return calculateAccessory(entry, reps, muscleGroup, unit, customIncrement)
	default:
		panic(fmt.Sprintf("progression calculate: invalid tier %q", tier))
	}
}

func incrementFor(muscleGroup program.MuscleGroup, unit program.Unit, customIncrement *float64) float64 {
	if customIncrement != nil {
		return *customIncrement
	}
	return program.DefaultIncrement(muscleGroup, unit)
}

// meetsPrescription checks every prescribed set against the rep target.
// Sets logged beyond the prescription are ignored; fewer logged sets
// than prescribed is a miss. An AMRAP final set only has to reach the
// same target - extra reps never fail it.
func meetsPrescription(scheme program.RepScheme, reps []int) bool {
	if len(reps) < scheme.Sets {
		return false
	}
	for i := 0; i < scheme.Sets; i++ {
		if reps[i] < scheme.Reps {
			return false
		}
	}
	return true
}

func calculatePrimary(
	tier program.Tier,
	entry Entry,
	reps []int,
	muscleGroup program.MuscleGroup,
	unit program.Unit,
	customIncrement *float64,
) Outcome {
	scheme := program.SchemeFor(tier, entry.Stage)
	outcome := Outcome{
		NewWeight: entry.CurrentWeight,
		NewStage:  entry.Stage,
	}

	// the scheme's final set is the AMRAP set; its reps feed record
	// bookkeeping regardless of pass or fail
	if scheme.AmrapFinalSet && len(reps) >= scheme.Sets {
		amrapReps := reps[scheme.Sets-1]
		outcome.AmrapReps = &amrapReps
	}

	if meetsPrescription(scheme, reps) {
		outcome.Success = true
		outcome.Type = ChangeTypeProgress
		outcome.NewWeight = entry.CurrentWeight + incrementFor(muscleGroup, unit, customIncrement)
		if outcome.AmrapReps != nil {
			outcome.Reason = fmt.Sprintf(
				"completed %s (%d reps on the AMRAP set), increasing weight to %g %s",
				scheme.Scheme, *outcome.AmrapReps, outcome.NewWeight, unit,
			)
		} else {
			outcome.Reason = fmt.Sprintf(
				"completed %s, increasing weight to %g %s",
				scheme.Scheme, outcome.NewWeight, unit,
			)
		}
		return outcome
	}

	if entry.Stage < program.MaxStage {
		outcome.Type = ChangeTypeStageChange
		outcome.NewStage = entry.Stage + 1
		outcome.Reason = fmt.Sprintf(
			"missed %s, switching to %s at the same weight",
			scheme.Scheme, program.SchemeFor(tier, outcome.NewStage).Scheme,
		)
		return outcome
	}

	outcome.Type = ChangeTypeDeload
	outcome.NewStage = program.MinStage
	outcome.NewWeight = program.DeloadWeight(entry.CurrentWeight, unit)
	outcome.Reason = fmt.Sprintf(
		"missed %s at the last stage, deloading to %g %s and restarting at %s",
		scheme.Scheme, outcome.NewWeight, unit,
		program.SchemeFor(tier, program.MinStage).Scheme,
	)
	return outcome
}

func calculateAccessory(
	entry Entry,
	reps []int,
	muscleGroup program.MuscleGroup,
	unit program.Unit,
	customIncrement *float64,
) Outcome {
	outcome := Outcome{
		NewWeight: entry.CurrentWeight,
		NewStage:  entry.Stage,
	}

	// pass/fail is decided by the final logged set alone; volume piled
	// up in earlier sets does not count
	if len(reps) > 0 {
		amrapReps := reps[len(reps)-1]
		outcome.AmrapReps = &amrapReps
	}

	if outcome.AmrapReps != nil && *outcome.AmrapReps >= program.T3PassReps {
		outcome.Success = true
		outcome.Type = ChangeTypeProgress
		outcome.NewWeight = entry.CurrentWeight + incrementFor(muscleGroup, unit, customIncrement)
		outcome.Reason = fmt.Sprintf(
			"final set hit %d reps (target %d), increasing weight to %g %s",
			*outcome.AmrapReps, program.T3PassReps, outcome.NewWeight, unit,
		)
		return outcome
	}

	outcome.Type = ChangeTypeRepeat
	if outcome.AmrapReps != nil {
		outcome.Reason = fmt.Sprintf(
			"final set reached %d of %d reps, repeating the same weight",
			*outcome.AmrapReps, program.T3PassReps,
		)
	} else {
		outcome.Reason = "no sets logged, repeating the same weight"
	}
	return outcome
}
