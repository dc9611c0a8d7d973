package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"forja/internal/models"
)

// ParseWorkoutFromTOML reads a custom-built workout file:
//
//	title = "Push day"
//	[[exercise]]
//	name = "Bench Press"
//	sets = 4
//	reps = "6-8"
//	target_muscles = ["chest", "triceps"]
//	rest_seconds = 120
func ParseWorkoutFromTOML(path string) (*models.GeneratedWorkout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var workout models.GeneratedWorkout
	if err := toml.Unmarshal(data, &workout); err != nil {
		return nil, err
	}

	if workout.Title == "" {
		return nil, fmt.Errorf("Workout file %s has no title", path)
	}

	return &workout, nil
}

// FormatDuration renders a duration as m:ss for timers and elapsed time.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
