package program

// ExerciseDefinition links an exercise tracked by this program to its
// template in the external workout log. Role is empty until the user
// assigns one; CustomIncrement overrides the default increment for
// accessory work (machines with odd plate steps).
type ExerciseDefinition struct {
	ID                 string      `json:"id"`
	ExternalTemplateID string      `json:"externalTemplateId"`
	Name               string      `json:"name"`
	Role               Role        `json:"role,omitempty"`
	MuscleGroup        MuscleGroup `json:"muscleGroup,omitempty"`
	CustomIncrement    *float64    `json:"customIncrement,omitempty"`
}

// EffectiveMuscleGroup resolves the muscle group driving the default
// increment: primary roles own a fixed muscle group, accessories carry
// their own, unset falls back to upper.
func (d ExerciseDefinition) EffectiveMuscleGroup() MuscleGroup {
	if d.Role.IsPrimary() {
		return d.Role.MuscleGroup()
	}
	if d.MuscleGroup.Valid() {
		return d.MuscleGroup
	}
	return MuscleGroupUpper
}

// Increment resolves the weight step for this exercise.
func (d ExerciseDefinition) Increment(unit Unit) float64 {
	if d.CustomIncrement != nil {
		return *d.CustomIncrement
	}
	return DefaultIncrement(d.EffectiveMuscleGroup(), unit)
}

// Settings is the user-tunable program configuration, persisted in the
// configuration partition.
type Settings struct {
	Unit             Unit `json:"unit"`
	ActiveDay        Day  `json:"activeDay"`
	AutoApplyChanges bool `json:"autoApplyChanges"`
	// RoutineToDay maps external routine ids to program days, used to
	// infer the day of a fetched workout
	RoutineToDay map[string]Day `json:"routineToDay"`
}

// DayForWorkout infers the program day of a workout: an explicit routine
// mapping wins, otherwise the configured active day is used. Returns
// DayUnknown when neither is set.
func (s Settings) DayForWorkout(routineID string) Day {
	if routineID != "" {
		if day, ok := s.RoutineToDay[routineID]; ok && day.Valid() {
			return day
		}
	}
	if s.ActiveDay.Valid() {
		return s.ActiveDay
	}
	return DayUnknown
}
