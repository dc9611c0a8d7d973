package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forja/internal/clock"
	"forja/internal/draft"
	"forja/internal/models"
)

func testWorkout() *models.GeneratedWorkout {
	return &models.GeneratedWorkout{
		Title: "Full Body A",
		Exercises: []models.ExerciseSpec{
			{Name: "Back Squat", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"quads"}, RestSeconds: 120},
			{Name: "Bench Press", TargetSets: 2, TargetReps: "10"},
		},
	}
}

func newTestTracker(t *testing.T) (*Tracker, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local))
	tr, err := NewFromWorkout(testWorkout(), clk, nil)
	require.NoError(t, err)
	return tr, clk
}

func TestFreshSessionSeedsEmptySets(t *testing.T) {
	tr, _ := newTestTracker(t)

	exercises := tr.Exercises()
	require.Len(t, exercises, 2)
	assert.Len(t, exercises[0].Sets, 3)
	assert.Len(t, exercises[1].Sets, 2)
	assert.Equal(t, 1, exercises[0].Sets[0].Ordinal)
	assert.False(t, exercises[0].Sets[0].Completed)
	assert.Equal(t, 0, tr.Progress())
}

func TestZeroExerciseWorkoutRefused(t *testing.T) {
	clk := clock.NewFake(time.Now())

	_, err := NewFromWorkout(&models.GeneratedWorkout{Title: "Empty"}, clk, nil)
	assert.ErrorIs(t, err, ErrNoExercises)

	_, err = NewFromDraft(&models.WorkoutDraft{Title: "Empty"}, clk, nil)
	assert.ErrorIs(t, err, ErrNoExercises)
}

func TestToggleOpensRestTimerOnlyOnCompletion(t *testing.T) {
	tr, _ := newTestTracker(t)

	rest, opened, err := tr.ToggleSet(1)
	require.NoError(t, err)
	assert.True(t, opened)
	assert.Equal(t, 120, rest, "uses the exercise's configured rest")

	// Un-completing has no side effect.
	_, opened, err = tr.ToggleSet(1)
	require.NoError(t, err)
	assert.False(t, opened)
}

func TestToggleFallsBackToDefaultRest(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.Navigate(1) // Bench Press has no rest configured

	rest, opened, err := tr.ToggleSet(1)
	require.NoError(t, err)
	assert.True(t, opened)
	assert.Equal(t, DefaultRestSeconds, rest)
}

func TestProgressIsDerivedAndBounded(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.ToggleSet(1)
	assert.Equal(t, 20, tr.Progress(), "1 of 5 sets")

	tr.ToggleSet(2)
	tr.ToggleSet(3)
	tr.Navigate(1)
	tr.ToggleSet(1)
	tr.ToggleSet(2)
	assert.Equal(t, 100, tr.Progress())

	// Toggling one back down moves it off 100 again.
	tr.ToggleSet(2)
	assert.Equal(t, 80, tr.Progress())
}

func TestSessionVolumeIgnoresNonNumeric(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.UpdateSet(1, FieldWeight, "100")
	tr.UpdateSet(1, FieldReps, "5")
	tr.ToggleSet(1)

	tr.UpdateSet(2, FieldWeight, "heavy")
	tr.UpdateSet(2, FieldReps, "5")
	tr.ToggleSet(2)

	// Completed with numbers but never completed sets do not count.
	tr.UpdateSet(3, FieldWeight, "200")
	tr.UpdateSet(3, FieldReps, "5")

	assert.InDelta(t, 500.0, tr.SessionVolume(), 0.001)
}

func TestAddSetCopiesPreviousWeight(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.UpdateSet(3, FieldWeight, "102.5")
	set := tr.AddSet()

	assert.Equal(t, 4, set.Ordinal)
	assert.Equal(t, "102.5", set.Weight)
	assert.Equal(t, 4, tr.ActiveExercise().TargetSets)
}

func TestNavigateClampsToBounds(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.Equal(t, 0, tr.Navigate(-1))
	assert.Equal(t, 1, tr.Navigate(1))
	assert.Equal(t, 1, tr.Navigate(5))
}

func TestFinalizeAveragesOnlyPositiveWeights(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.UpdateSet(1, FieldWeight, "100")
	tr.UpdateSet(1, FieldReps, "8")
	tr.ToggleSet(1)

	tr.UpdateSet(2, FieldWeight, "110")
	tr.UpdateSet(2, FieldReps, "6")
	tr.ToggleSet(2)

	// Third set stays incomplete.
	tr.UpdateSet(3, FieldWeight, "120")

	out := tr.Finalize()
	require.Len(t, out, 2)

	assert.Equal(t, "Back Squat", out[0].Name)
	assert.Equal(t, "2", out[0].Sets)
	assert.Equal(t, "8,6", out[0].Reps)
	assert.Equal(t, "105", out[0].Weight)

	// No completed sets: still present, sets "0", reps fall back to the
	// target scheme.
	assert.Equal(t, "Bench Press", out[1].Name)
	assert.Equal(t, "0", out[1].Sets)
	assert.Equal(t, "10", out[1].Reps)
	assert.Equal(t, "", out[1].Weight)
}

func TestFinalizeBlankAndZeroWeightsExcludedFromAverage(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.UpdateSet(1, FieldWeight, "0")
	tr.UpdateSet(1, FieldReps, "12")
	tr.ToggleSet(1)

	tr.UpdateSet(2, FieldReps, "12")
	tr.ToggleSet(2)

	out := tr.Finalize()
	assert.Equal(t, "2", out[0].Sets)
	assert.Equal(t, "", out[0].Weight, "all-bodyweight sets produce no average, not zero")
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr, clk := newTestTracker(t)

	tr.UpdateSet(1, FieldWeight, "100")
	tr.UpdateSet(1, FieldReps, "8")
	tr.ToggleSet(1)
	tr.Navigate(1)

	clk.Advance(10 * time.Minute)
	snap := tr.Snapshot()
	assert.Equal(t, 600, snap.ElapsedSeconds)

	restored, err := NewFromDraft(&snap, clk, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, restored.ActiveIndex())
	assert.Equal(t, tr.Title(), restored.Title())
	assert.True(t, restored.Exercises()[0].Sets[0].Completed)
	assert.Equal(t, "100", restored.Exercises()[0].Sets[0].Weight)

	// Elapsed picks up from the saved baseline.
	clk.Advance(1 * time.Minute)
	assert.Equal(t, 11*time.Minute, restored.Elapsed())
}

func TestMutationsScheduleAutosave(t *testing.T) {
	store := draft.NewMemStore()
	clk := clock.NewFake(time.Now())
	drafts := draft.NewManager(store, clk)

	tr, err := NewFromWorkout(testWorkout(), clk, drafts)
	require.NoError(t, err)

	tr.UpdateSet(1, FieldWeight, "100")
	tr.ToggleSet(1)
	drafts.Flush()

	d, ok := drafts.Load()
	require.True(t, ok)
	assert.True(t, d.Exercises[0].Sets[0].Completed)
	assert.Equal(t, "100", d.Exercises[0].Sets[0].Weight)
}

func TestUpdateUnknownSetRejected(t *testing.T) {
	tr, _ := newTestTracker(t)

	err := tr.UpdateSet(9, FieldWeight, "100")
	assert.Error(t, err)

	_, _, err = tr.ToggleSet(0)
	assert.Error(t, err)
}
