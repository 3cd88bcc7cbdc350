package history

import (
	"sort"
	"time"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
)

// maxEntriesPerKey caps how many history entries one progression record
// keeps. Oldest entries are pruned first once the cap is exceeded.
const maxEntriesPerKey = 100

// Entry is one applied progression change, decorated with the exercise
// name so the history reads without a definitions lookup.
type Entry struct {
	ProgressionKey progression.Key        `json:"progressionKey"`
	ExerciseID     string                 `json:"exerciseId"`
	ExerciseName   string                 `json:"exerciseName,omitempty"`
	Tier           program.Tier           `json:"tier"`
	ChangeType     progression.ChangeType `json:"changeType"`
	OldWeight      float64                `json:"oldWeight"`
	NewWeight      float64                `json:"newWeight"`
	OldStage       program.Stage          `json:"oldStage"`
	NewStage       program.Stage          `json:"newStage"`
	AmrapReps      *int                   `json:"amrapReps,omitempty"`
	WorkoutID      string                 `json:"workoutId"`
	WorkoutDate    time.Time              `json:"workoutDate"`
	RecordedAt     time.Time              `json:"recordedAt"`
}

// NewEntry builds the history record for an applied change, resolving
// the exercise name from the definitions when possible.
func NewEntry(
	change progression.PendingChange,
	definitions []program.ExerciseDefinition,
	recordedAt time.Time,
) Entry {
	entry := Entry{
		ProgressionKey: change.ProgressionKey,
		ExerciseID:     change.ExerciseID,
		Tier:           change.Tier,
		ChangeType:     change.Type,
		OldWeight:      change.CurrentWeight,
		NewWeight:      change.NewWeight,
		OldStage:       change.CurrentStage,
		NewStage:       change.NewStage,
		AmrapReps:      change.AmrapReps,
		WorkoutID:      change.WorkoutID,
		WorkoutDate:    change.WorkoutDate,
		RecordedAt:     recordedAt,
	}
	for _, def := range definitions {
		if def.ID == change.ExerciseID {
			entry.ExerciseName = def.Name
			break
		}
	}
	return entry
}

// Record appends the change to the history unless an entry for the same
// (progressionKey, workoutId) pair already exists - recording twice is a
// no-op. The result is sorted ascending by workout date and capped per
// key, oldest pruned first. The input slice is never mutated.
func Record(
	entries []Entry,
	change progression.PendingChange,
	definitions []program.ExerciseDefinition,
	recordedAt time.Time,
) []Entry {
	for _, entry := range entries {
		if entry.ProgressionKey == change.ProgressionKey && entry.WorkoutID == change.WorkoutID {
			return entries
		}
	}

	updated := make([]Entry, 0, len(entries)+1)
	updated = append(updated, entries...)
	updated = append(updated, NewEntry(change, definitions, recordedAt))
	sort.SliceStable(updated, func(i, j int) bool {
		return updated[i].WorkoutDate.Before(updated[j].WorkoutDate)
	})

	return pruneKey(updated, change.ProgressionKey)
}

// pruneKey enforces the per-key cap on an ascending-sorted history,
// dropping the key's oldest entries first.
func pruneKey(entries []Entry, key progression.Key) []Entry {
	count := 0
	for _, entry := range entries {
		if entry.ProgressionKey == key {
			count++
		}
	}
	if count <= maxEntriesPerKey {
		return entries
	}

	toDrop := count - maxEntriesPerKey
	pruned := make([]Entry, 0, len(entries)-toDrop)
	for _, entry := range entries {
		if toDrop > 0 && entry.ProgressionKey == key {
			toDrop--
			continue
		}
		pruned = append(pruned, entry)
	}
	return pruned
}
