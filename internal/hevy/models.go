package hevy

import "time"

// SetType is the kind of a logged set, as reported by the Hevy API.
type SetType string

const (
	SetTypeNormal  SetType = "normal"
	SetTypeWarmup  SetType = "warmup"
	SetTypeDropset SetType = "dropset"
	SetTypeFailure SetType = "failure"
)

// Set is one logged set. Reps can be null in the API response when the
// set was logged without a rep count.
type Set struct {
	Index  int      `json:"index"`
	Type   SetType  `json:"type"`
	Weight *float64 `json:"weight_kg"`
	Reps   *int     `json:"reps"`
}

type WorkoutExercise struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	TemplateID string `json:"exercise_template_id"`
	Sets       []Set  `json:"sets"`
}

// Workout is an immutable, externally sourced workout log.
type Workout struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	RoutineID string            `json:"routine_id,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Exercises []WorkoutExercise `json:"exercises"`
}

type WorkoutsResponse struct {
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Workouts  []Workout `json:"workouts"`
}

type Routine struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type RoutinesResponse struct {
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Routines  []Routine `json:"routines"`
}
