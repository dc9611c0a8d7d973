package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forja/internal/models"
)

func pushWorkout() *models.GeneratedWorkout {
	return &models.GeneratedWorkout{
		Title: "Push Day",
		Exercises: []models.ExerciseSpec{
			{Name: "Bench Press", TargetMuscles: []string{"Chest", "Triceps"}},
			{Name: "Overhead Press", TargetMuscles: []string{"Shoulders", "triceps"}},
		},
	}
}

func TestMuscleConflictsIgnoresCaseAndWhitespace(t *testing.T) {
	conflicts := MuscleConflicts(pushWorkout(), []string{"  CHEST ", "tRiCePs"})
	assert.Equal(t, []string{"chest", "triceps"}, conflicts)
}

func TestMuscleConflictsDedupesAndSorts(t *testing.T) {
	conflicts := MuscleConflicts(pushWorkout(), []string{"triceps", "chest", "Triceps", "chest"})
	assert.Equal(t, []string{"chest", "triceps"}, conflicts)
}

func TestMuscleConflictsNoOverlap(t *testing.T) {
	conflicts := MuscleConflicts(pushWorkout(), []string{"legs", "back", ""})
	assert.Empty(t, conflicts)
}

func TestMuscleConflictsNilInputs(t *testing.T) {
	assert.Nil(t, MuscleConflicts(nil, []string{"chest"}))
	assert.Nil(t, MuscleConflicts(pushWorkout(), nil))
}
