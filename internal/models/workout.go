package models

import "strings"

// GeneratedWorkout is the plan for one attempt, produced by the AI
// generator, a weekly-plan day, a saved template, or the custom builder.
// It is immutable once buffered for an attempt.
type GeneratedWorkout struct {
	Title         string         `json:"title" toml:"title"`
	Exercises     []ExerciseSpec `json:"exercises" toml:"exercise"`
	DurationMin   int            `json:"duration_min,omitempty" toml:"duration_min,omitempty"`
	Intensity     string         `json:"intensity,omitempty" toml:"intensity,omitempty"`
	RecoveryNotes string         `json:"recovery_notes,omitempty" toml:"recovery_notes,omitempty"`
}

type ExerciseSpec struct {
	Name          string   `json:"name" toml:"name"`
	TargetSets    int      `json:"sets" toml:"sets"`
	TargetReps    string   `json:"reps" toml:"reps"`
	TargetMuscles []string `json:"target_muscles,omitempty" toml:"target_muscles,omitempty"`
	RestSeconds   int      `json:"rest_seconds,omitempty" toml:"rest_seconds,omitempty"`
	Notes         string   `json:"notes,omitempty" toml:"notes,omitempty"`
}

// TargetMuscleSet collects every muscle the workout touches, lowercased.
func (w *GeneratedWorkout) TargetMuscleSet() map[string]bool {
	muscles := make(map[string]bool)
	for _, ex := range w.Exercises {
		for _, m := range ex.TargetMuscles {
			muscles[normalizeMuscle(m)] = true
		}
	}
	return muscles
}

func normalizeMuscle(m string) string {
	return strings.ToLower(strings.TrimSpace(m))
}

type RecoveryCheck struct {
	EnergyLevel int      `json:"energy_level" toml:"energy_level"` // 1 (wrecked) to 5 (fresh).
	SoreAreas   []string `json:"sore_areas" toml:"sore_areas"`
	SleepHours  float32  `json:"sleep_hours" toml:"sleep_hours"`
}
