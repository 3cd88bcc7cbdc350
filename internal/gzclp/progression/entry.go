package progression

import (
	"fmt"
	"time"

	"github.com/2beens/gzclp/internal/gzclp/program"
)

// Key identifies one independent progression record. The four primary
// lift roles each own two simultaneous records, one per tier, keyed
// "squat-T1" style; accessory work is keyed by raw exercise id.
type Key string

func PrimaryKey(role program.Role, tier program.Tier) Key {
	return Key(fmt.Sprintf("%s-%s", role, tier))
}

func AccessoryKey(exerciseID string) Key {
	return Key(exerciseID)
}

// KeyFor composes the record identity for a definition and the tier it
// occupies right now. Same-role records of different tiers never share
// a key, so mutating squat-T1 can not touch squat-T2.
func KeyFor(def program.ExerciseDefinition, tier program.Tier) Key {
	if tier == program.TierT3 || !def.Role.IsPrimary() {
		return AccessoryKey(def.ID)
	}
	return PrimaryKey(def.Role, tier)
}

// Entry is one progression record: the currently prescribed weight and
// stage for a (role, tier) pair or for one accessory exercise.
type Entry struct {
	Key              Key           `json:"progressionKey"`
	LinkedExerciseID string        `json:"linkedExerciseId"`
	CurrentWeight    float64       `json:"currentWeight"`
	Stage            program.Stage `json:"stage"`
	BaseWeight       float64       `json:"baseWeight"`
	AmrapRecord      int           `json:"amrapRecord"`
	AmrapRecordDate  *time.Time    `json:"amrapRecordDate,omitempty"`
	LastWorkoutID    string        `json:"lastWorkoutId,omitempty"`
	LastWorkoutDate  *time.Time    `json:"lastWorkoutDate,omitempty"`
}

// ChangeType says what a pending change does to its record.
type ChangeType string

const (
	ChangeTypeProgress    ChangeType = "progress"
	ChangeTypeStageChange ChangeType = "stage_change"
	ChangeTypeDeload      ChangeType = "deload"
	ChangeTypeRepeat      ChangeType = "repeat"
)

// Discrepancy surfaces drift between the stored prescription and the
// weight actually lifted, e.g. after an edit made directly in the
// external log. Not an error: queued for user review, never blocks
// progression.
type Discrepancy struct {
	StoredWeight float64 `json:"storedWeight"`
	ActualWeight float64 `json:"actualWeight"`
}

// AnalysisResult is the ephemeral per-exercise output of one analysis
// pass, input to the pending change builder.
type AnalysisResult struct {
	ExerciseID     string       `json:"exerciseId"`
	ProgressionKey Key          `json:"progressionKey"`
	Tier           program.Tier `json:"tier"`
	Reps           []int        `json:"reps"`
	Weight         float64      `json:"weight"`
	Discrepancy    *Discrepancy `json:"discrepancy,omitempty"`
	WorkoutID      string       `json:"workoutId"`
	WorkoutDate    time.Time    `json:"workoutDate"`
}

// PendingChange is a reviewable proposal to move one progression record.
// It lives until applied or rejected. The id is deterministic per
// (progressionKey, workoutId) so reprocessing the same workout can never
// queue a duplicate.
type PendingChange struct {
	ID             string        `json:"id"`
	ProgressionKey Key           `json:"progressionKey"`
	ExerciseID     string        `json:"exerciseId"`
	Tier           program.Tier  `json:"tier"`
	Type           ChangeType    `json:"type"`
	Status         ChangeStatus  `json:"status"`
	CurrentWeight  float64       `json:"currentWeight"`
	NewWeight      float64       `json:"newWeight"`
	CurrentStage   program.Stage `json:"currentStage"`
	NewStage       program.Stage `json:"newStage"`
	Reason         string        `json:"reason"`
	AmrapReps      *int          `json:"amrapReps,omitempty"`
	Discrepancy    *Discrepancy  `json:"discrepancy,omitempty"`
	WorkoutID      string        `json:"workoutId"`
	WorkoutDate    time.Time     `json:"workoutDate"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ChangeID builds the deterministic pending change id.
func ChangeID(key Key, workoutID string) string {
	return fmt.Sprintf("%s::%s", key, workoutID)
}

// EntriesMap indexes entries by progression key, the shape the analyzer
// consumes.
func EntriesMap(entries []Entry) map[Key]Entry {
	byKey := make(map[Key]Entry, len(entries))
	for _, entry := range entries {
		byKey[entry.Key] = entry
	}
	return byKey
}

// ApplyChange returns the entry as it looks after the change: new weight
// and stage, last-workout bookkeeping, and a bumped AMRAP record when the
// change's final-set reps beat the old record. Pure - persisting the
// result is the caller's business.
func ApplyChange(entry Entry, change PendingChange) Entry {
	entry.CurrentWeight = change.NewWeight
	entry.Stage = change.NewStage
	entry.LastWorkoutID = change.WorkoutID
	workoutDate := change.WorkoutDate
	entry.LastWorkoutDate = &workoutDate

	if change.AmrapReps != nil && *change.AmrapReps > entry.AmrapRecord {
		entry.AmrapRecord = *change.AmrapReps
		recordDate := change.WorkoutDate
		entry.AmrapRecordDate = &recordDate
	}

	return entry
}
