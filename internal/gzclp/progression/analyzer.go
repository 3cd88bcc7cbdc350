package progression

import (
	"sort"
	"time"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/hevy"
)

// AnalyzeWorkout turns one logged workout into per-exercise analysis
// results, matching each logged exercise to a tracked definition and its
// progression record.
//
// Exercises are skipped, never erroring the whole workout, when: the
// template is not tracked by the program, a primary lift's tier can not
// be resolved for the day (an unknown day never defaults to T1), or no
// progression record exists for the composed key. A working weight that
// differs from the record's prescribed weight is attached as a
// discrepancy, it does not block analysis.
func AnalyzeWorkout(
	workout hevy.Workout,
	definitions []program.ExerciseDefinition,
	entries map[Key]Entry,
	day program.Day,
) []AnalysisResult {
	defByTemplate := make(map[string]program.ExerciseDefinition, len(definitions))
	for _, def := range definitions {
		defByTemplate[def.ExternalTemplateID] = def
	}

	var results []AnalysisResult
	for _, exercise := range workout.Exercises {
		def, ok := defByTemplate[exercise.TemplateID]
		if !ok {
			continue
		}
		tier, ok := program.TierFor(def.Role, day)
		if !ok {
			continue
		}
		key := KeyFor(def, tier)
		entry, ok := entries[key]
		if !ok {
			continue
		}

		extracted := ExtractSets(exercise)
		result := AnalysisResult{
			ExerciseID:     def.ID,
			ProgressionKey: key,
			Tier:           tier,
			Reps:           extracted.Reps,
			Weight:         extracted.Weight,
			WorkoutID:      workout.ID,
			WorkoutDate:    workout.StartTime,
		}
		if extracted.Weight != entry.CurrentWeight {
			result.Discrepancy = &Discrepancy{
				StoredWeight: entry.CurrentWeight,
				ActualWeight: extracted.Weight,
			}
		}
		results = append(results, result)
	}
	return results
}

// Batch is the outcome of analyzing a set of workouts in one pass.
// Entries is the advanced scratch state: the input entries with every
// emitted change already applied, so callers can diff or discard it.
type Batch struct {
	Results []AnalysisResult
	Changes []PendingChange
	Entries map[Key]Entry
}

// AnalyzeWorkouts runs the full analysis pipeline over multiple
// workouts. Workouts are processed in ascending chronological order and
// each workout's changes are applied to a scratch copy of the entries
// before the next one is analyzed - a later workout's verdict can depend
// on an earlier one moving the same record. The caller's entries map is
// never mutated.
func AnalyzeWorkouts(
	workouts []hevy.Workout,
	definitions []program.ExerciseDefinition,
	entries map[Key]Entry,
	settings program.Settings,
	now time.Time,
) Batch {
	sorted := make([]hevy.Workout, len(workouts))
	copy(sorted, workouts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	scratch := make(map[Key]Entry, len(entries))
	for key, entry := range entries {
		scratch[key] = entry
	}

	batch := Batch{Entries: scratch}
	seen := make(map[string]struct{})
	for _, workout := range sorted {
		day := settings.DayForWorkout(workout.RoutineID)
		results := AnalyzeWorkout(workout, definitions, scratch, day)
		changes := BuildPendingChanges(results, definitions, scratch, settings.Unit, now)
		for _, change := range changes {
			if _, ok := seen[change.ID]; ok {
				continue
			}
			seen[change.ID] = struct{}{}
			scratch[change.ProgressionKey] = ApplyChange(scratch[change.ProgressionKey], change)
			batch.Changes = append(batch.Changes, change)
		}
		batch.Results = append(batch.Results, results...)
	}
	return batch
}
