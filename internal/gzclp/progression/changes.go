package progression

import (
	"time"

	"github.com/2beens/gzclp/internal/gzclp/program"
)

// BuildPendingChanges runs the progression calculator over analysis
// results and emits at most one PendingChange per (progressionKey,
// workoutId) pair, so reprocessing the same workout never queues a
// duplicate. Results whose definition or progression record is gone by
// build time are skipped.
func BuildPendingChanges(
	results []AnalysisResult,
	definitions []program.ExerciseDefinition,
	entries map[Key]Entry,
	unit program.Unit,
	now time.Time,
) []PendingChange {
	defByID := make(map[string]program.ExerciseDefinition, len(definitions))
	for _, def := range definitions {
		defByID[def.ID] = def
	}

	seen := make(map[string]struct{}, len(results))
	var changes []PendingChange
	for _, result := range results {
		id := ChangeID(result.ProgressionKey, result.WorkoutID)
		if _, ok := seen[id]; ok {
			continue
		}
		def, ok := defByID[result.ExerciseID]
		if !ok {
			continue
		}
		entry, ok := entries[result.ProgressionKey]
		if !ok {
			continue
		}

		outcome := Calculate(
			result.Tier, entry, result.Reps,
			def.EffectiveMuscleGroup(), unit, def.CustomIncrement,
		)

		seen[id] = struct{}{}
		changes = append(changes, PendingChange{
			ID:             id,
			ProgressionKey: result.ProgressionKey,
			ExerciseID:     result.ExerciseID,
			Tier:           result.Tier,
			Type:           outcome.Type,
			Status:         ChangeStatusPending,
			CurrentWeight:  entry.CurrentWeight,
			NewWeight:      outcome.NewWeight,
			CurrentStage:   entry.Stage,
			NewStage:       outcome.NewStage,
			Reason:         outcome.Reason,
			AmrapReps:      outcome.AmrapReps,
			Discrepancy:    result.Discrepancy,
			WorkoutID:      result.WorkoutID,
			WorkoutDate:    result.WorkoutDate,
			CreatedAt:      now,
		})
	}
	return changes
}
