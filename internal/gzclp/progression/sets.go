package progression

import (
	"github.com/2beens/gzclp/internal/hevy"
)

// ExtractedSets holds the analyzable slice of a logged exercise: reps per
// working set plus the working weight, taken from the first non-warmup
// set. Warmups never count toward progression; dropsets and failure sets
// do.
type ExtractedSets struct {
	Reps   []int
	Weight float64
}

// ExtractSets filters a logged exercise down to its working sets. A set
// with no reps recorded counts as 0 reps. An exercise that is all
// warmups extracts to no sets and weight 0.
func ExtractSets(exercise hevy.WorkoutExercise) ExtractedSets {
	var extracted ExtractedSets
	weightSet := false
	for _, set := range exercise.Sets {
		if set.Type == hevy.SetTypeWarmup {
			continue
		}
		reps := 0
		if set.Reps != nil {
			reps = *set.Reps
		}
		extracted.Reps = append(extracted.Reps, reps)
		if !weightSet {
			if set.Weight != nil {
				extracted.Weight = *set.Weight
			}
			weightSet = true
		}
	}
	return extracted
}
