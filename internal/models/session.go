package models

import "time"

// SetRecord is one logged set. Weight and reps are free-form strings so a
// half-typed entry never gets rejected mid-set; numeric parsing happens at
// read time (volume, finalize).
type SetRecord struct {
	Ordinal   int    `json:"ordinal"`
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}

type TrackedExercise struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetSets    int         `json:"target_sets"`
	TargetReps    string      `json:"target_reps"`
	TargetMuscles []string    `json:"target_muscles,omitempty"`
	RestSeconds   int         `json:"rest_seconds,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Sets          []SetRecord `json:"sets"`
}

func (e *TrackedExercise) CompletedSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// WorkoutDraft is the crash-recovery snapshot of an in-progress session.
// Exactly one exists at a time, serialized as a single blob under a fixed
// store key.
type WorkoutDraft struct {
	Title          string            `json:"title"`
	Exercises      []TrackedExercise `json:"exercises"`
	ActiveIndex    int               `json:"active_index"`
	ElapsedSeconds int               `json:"elapsed_seconds"`
	StartTime      time.Time         `json:"start_time"`
	SavedAt        time.Time         `json:"saved_at"`
}

// FinalizedExercise is the persisted workout-log shape handed to the
// history commit. Sets/Reps/Weight are strings because that is how logs
// are displayed and stored; see Tracker.Finalize for the exact rules.
type FinalizedExercise struct {
	Name          string   `json:"name"`
	Sets          string   `json:"sets"`
	Reps          string   `json:"reps"`
	Weight        string   `json:"weight"`
	TargetMuscles []string `json:"target_muscles,omitempty"`
}
