package flow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forja/internal/clock"
	"forja/internal/draft"
	"forja/internal/generator"
	"forja/internal/models"
	"forja/internal/session"
)

type fakeGen struct {
	workout *models.GeneratedWorkout
	err     error
	calls   int
}

func (g *fakeGen) Generate(context.Context, *models.Profile, *models.RecoveryCheck, []string) (*models.GeneratedWorkout, error) {
	g.calls++
	return g.workout, g.err
}

type savedWorkout struct {
	title     string
	exercises []models.FinalizedExercise
	rating    int
}

type fakeHistory struct {
	saveErr error
	saves   []savedWorkout
	recent  []string
	week    int
}

func (h *fakeHistory) SaveWorkout(title string, exercises []models.FinalizedExercise, rating int, startedAt time.Time, durationMin int) error {
	if h.saveErr != nil {
		return h.saveErr
	}
	h.saves = append(h.saves, savedWorkout{title: title, exercises: exercises, rating: rating})
	return nil
}

func (h *fakeHistory) RecentWorkoutTitles(n int) ([]string, error) { return h.recent, nil }
func (h *fakeHistory) WorkoutsThisWeek() (int, error)              { return h.week, nil }

type fakePlan struct {
	err   error
	calls []int
}

func (p *fakePlan) MarkDayComplete(dayIndex int) error {
	if p.err != nil {
		return p.err
	}
	p.calls = append(p.calls, dayIndex)
	return nil
}

type testEnv struct {
	ctrl    *Controller
	gen     *fakeGen
	history *fakeHistory
	plan    *fakePlan
	drafts  *draft.Manager
	store   *draft.MemStore
	clk     *clock.Fake
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		gen:     &fakeGen{},
		history: &fakeHistory{},
		plan:    &fakePlan{},
		store:   draft.NewMemStore(),
		clk:     clock.NewFake(time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)),
	}
	env.drafts = draft.NewManager(env.store, env.clk)

	ctrl, err := NewController(&MemStateStore{}, env.gen, generator.StaticFallback{}, env.history, env.plan, env.drafts, models.DefaultProfile(), env.clk)
	require.NoError(t, err)
	env.ctrl = ctrl
	return env
}

func legWorkout() *models.GeneratedWorkout {
	return &models.GeneratedWorkout{
		Title: "Leg Day",
		Exercises: []models.ExerciseSpec{
			{Name: "Back Squat", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"Legs", "glutes"}, RestSeconds: 120},
			{Name: "Leg Curl", TargetSets: 3, TargetReps: "12", TargetMuscles: []string{"legs"}},
		},
	}
}

func finalizedFor(w *models.GeneratedWorkout) []models.FinalizedExercise {
	out := make([]models.FinalizedExercise, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		out = append(out, models.FinalizedExercise{Name: ex.Name, Sets: "1", Reps: "8", Weight: "100"})
	}
	return out
}

func assertFullyReset(t *testing.T, s *State) {
	t.Helper()
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, EntryContext{}, s.Entry)
	assert.Nil(t, s.Recovery)
	assert.Nil(t, s.Generated)
	assert.Nil(t, s.Quick)
	assert.False(t, s.UsedFallback)
	assert.True(t, s.StartedAt.IsZero())
	assert.Nil(t, s.PendingLog)
	assert.Zero(t, s.PendingMin)
}

func TestManualFlowWithGeneratorFailureFallsBack(t *testing.T) {
	env := newTestEnv(t)
	env.gen.err = fmt.Errorf("network down")
	env.history.week = 1

	require.NoError(t, env.ctrl.StartManual())
	assert.Equal(t, PhaseRecoveryCheck, env.ctrl.Phase())
	assert.Equal(t, EntryManual, env.ctrl.State().Entry.Kind)

	usedFallback, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 2, SleepHours: 6})
	require.NoError(t, err, "generation failure is never fatal")
	assert.True(t, usedFallback)
	assert.Equal(t, PhasePreview, env.ctrl.Phase())

	want := generator.StaticFallback{}.Default("general", 1)
	assert.Equal(t, want.Title, env.ctrl.State().Generated.Title)

	require.NoError(t, env.ctrl.ConfirmStart())
	assert.Equal(t, PhaseActive, env.ctrl.Phase())
	assert.Equal(t, env.clk.Now(), env.ctrl.State().StartedAt)

	finalized := finalizedFor(env.ctrl.State().Generated)
	require.NoError(t, env.ctrl.CompleteSession(finalized, 45))

	warning, err := env.ctrl.FinishAttempt(4)
	require.NoError(t, err)
	assert.Empty(t, warning)

	require.Len(t, env.history.saves, 1)
	assert.Equal(t, want.Title, env.history.saves[0].title)
	assert.Equal(t, 4, env.history.saves[0].rating)
	assert.Len(t, env.history.saves[0].exercises, len(want.Exercises))

	assertFullyReset(t, env.ctrl.State())
}

func TestGeneratorSuccessSkipsFallback(t *testing.T) {
	env := newTestEnv(t)
	env.gen.workout = legWorkout()

	require.NoError(t, env.ctrl.StartManual())
	usedFallback, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 4})
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "Leg Day", env.ctrl.State().Generated.Title)
	assert.Equal(t, 1, env.gen.calls)
}

func TestEmptyGeneratedWorkoutTreatedAsFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gen.workout = &models.GeneratedWorkout{Title: "Nothing"}

	require.NoError(t, env.ctrl.StartManual())
	usedFallback, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 3})
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.NotEmpty(t, env.ctrl.State().Generated.Exercises)
}

func TestPlanEntryWithSorenessConflict(t *testing.T) {
	env := newTestEnv(t)

	entry := EntryContext{Kind: EntryPlan, PlanDay: 3}
	conflicts, err := env.ctrl.StartWithWorkout(entry, legWorkout(), []string{"legs"})
	require.NoError(t, err)
	assert.Equal(t, []string{"legs"}, conflicts)
	assert.Equal(t, PhaseQuickCheck, env.ctrl.Phase())
	assert.Equal(t, 0, env.gen.calls, "a fixed workout never calls the generator")

	// The user trains anyway.
	require.NoError(t, env.ctrl.ProceedAnyway())
	assert.Equal(t, PhasePreview, env.ctrl.Phase())
	assert.Nil(t, env.ctrl.State().Quick)

	require.NoError(t, env.ctrl.ConfirmStart())
	require.NoError(t, env.ctrl.CompleteSession(finalizedFor(legWorkout()), 50))

	warning, err := env.ctrl.FinishAttempt(0)
	require.NoError(t, err)
	assert.Empty(t, warning)

	assert.Equal(t, []int{3}, env.plan.calls, "plan day marked complete exactly once")
	assertFullyReset(t, env.ctrl.State())
}

func TestPlanEntryWithoutConflictGoesStraightToPreview(t *testing.T) {
	env := newTestEnv(t)

	conflicts, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryPlan, PlanDay: 1}, legWorkout(), []string{"chest"})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, PhasePreview, env.ctrl.Phase())
}

func TestEscalateFromQuickCheckRegenerates(t *testing.T) {
	env := newTestEnv(t)
	env.gen.workout = &models.GeneratedWorkout{
		Title:     "Upper Body Recovery-Friendly",
		Exercises: []models.ExerciseSpec{{Name: "Bench Press", TargetSets: 3, TargetReps: "8"}},
	}

	_, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryTemplate, TemplateID: "t1"}, legWorkout(), []string{"legs"})
	require.NoError(t, err)
	require.Equal(t, PhaseQuickCheck, env.ctrl.Phase())

	require.NoError(t, env.ctrl.EscalateToFullCheck())
	assert.Equal(t, PhaseRecoveryCheck, env.ctrl.Phase())
	assert.Nil(t, env.ctrl.State().Generated, "the fixed workout is dropped for regeneration")

	usedFallback, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 3, SoreAreas: []string{"legs"}})
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "Upper Body Recovery-Friendly", env.ctrl.State().Generated.Title)
	// The entry context survives escalation: finishing still belongs to
	// the template attempt.
	assert.Equal(t, EntryTemplate, env.ctrl.State().Entry.Kind)
}

func TestCommitFailureKeepsLogAndDraft(t *testing.T) {
	env := newTestEnv(t)
	env.gen.workout = legWorkout()
	env.history.saveErr = fmt.Errorf("connection refused")

	require.NoError(t, env.ctrl.StartManual())
	_, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 3})
	require.NoError(t, err)
	require.NoError(t, env.ctrl.ConfirmStart())

	require.NoError(t, env.drafts.SaveNow(models.WorkoutDraft{Title: "Leg Day"}))

	finalized := finalizedFor(legWorkout())
	require.NoError(t, env.ctrl.CompleteSession(finalized, 40))

	_, err = env.ctrl.FinishAttempt(0)
	require.Error(t, err)

	assert.Equal(t, PhaseCompleted, env.ctrl.Phase(), "stays completed for a retry")
	assert.Equal(t, finalized, env.ctrl.State().PendingLog, "the finalized log is not discarded")
	_, present := env.store.Get(draft.DraftKey)
	assert.True(t, present, "the draft stays as a safety net")

	// The retry succeeds and only then is everything torn down.
	env.history.saveErr = nil
	warning, err := env.ctrl.FinishAttempt(0)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Len(t, env.history.saves, 1)

	_, present = env.store.Get(draft.DraftKey)
	assert.False(t, present)
	assertFullyReset(t, env.ctrl.State())
}

func TestPlanSideEffectFailureIsSoftWarning(t *testing.T) {
	env := newTestEnv(t)
	env.plan.err = fmt.Errorf("sync failed")

	_, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryPlan, PlanDay: 2}, legWorkout(), nil)
	require.NoError(t, err)
	require.NoError(t, env.ctrl.ConfirmStart())
	require.NoError(t, env.ctrl.CompleteSession(finalizedFor(legWorkout()), 30))

	warning, err := env.ctrl.FinishAttempt(0)
	require.NoError(t, err, "the workout save is authoritative and already committed")
	assert.NotEmpty(t, warning)
	assert.Len(t, env.history.saves, 1)
	assertFullyReset(t, env.ctrl.State())
}

func TestConfirmStartRefusesEmptyWorkout(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryCustom}, &models.GeneratedWorkout{Title: "Empty"}, nil)
	require.NoError(t, err)
	require.Equal(t, PhasePreview, env.ctrl.Phase())

	err = env.ctrl.ConfirmStart()
	assert.ErrorIs(t, err, session.ErrNoExercises)
	assert.Equal(t, PhasePreview, env.ctrl.Phase(), "no half-entered active phase")

	// The only way out is cancel.
	require.NoError(t, env.ctrl.Cancel())
	assertFullyReset(t, env.ctrl.State())
}

func TestCancelClearsEverythingFromAnyPhase(t *testing.T) {
	phases := []func(env *testEnv){
		func(env *testEnv) { // from recovery check
			require.NoError(t, env.ctrl.StartManual())
		},
		func(env *testEnv) { // from quick check
			_, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryPlan, PlanDay: 0}, legWorkout(), []string{"legs"})
			require.NoError(t, err)
		},
		func(env *testEnv) { // from active
			_, err := env.ctrl.StartWithWorkout(EntryContext{Kind: EntryCustom}, legWorkout(), nil)
			require.NoError(t, err)
			require.NoError(t, env.ctrl.ConfirmStart())
			require.NoError(t, env.drafts.SaveNow(models.WorkoutDraft{Title: "Leg Day"}))
		},
	}

	for _, setup := range phases {
		env := newTestEnv(t)
		setup(env)

		require.NoError(t, env.ctrl.Cancel())
		assertFullyReset(t, env.ctrl.State())

		_, present := env.store.Get(draft.DraftKey)
		assert.False(t, present)
	}
}

func TestCancelWithoutAttemptRejected(t *testing.T) {
	env := newTestEnv(t)
	assert.Error(t, env.ctrl.Cancel())
}

func TestTransitionsRejectWrongPhase(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ctrl.SubmitRecovery(context.Background(), &models.RecoveryCheck{EnergyLevel: 3})
	assert.Error(t, err)
	assert.Error(t, env.ctrl.ConfirmStart())
	assert.Error(t, env.ctrl.ProceedAnyway())
	assert.Error(t, env.ctrl.CompleteSession(nil, 0))
	_, err = env.ctrl.FinishAttempt(0)
	assert.Error(t, err)

	require.NoError(t, env.ctrl.StartManual())
	assert.Error(t, env.ctrl.StartManual(), "no second attempt while one is in progress")
	_, err = env.ctrl.StartWithWorkout(EntryContext{Kind: EntryCustom}, legWorkout(), nil)
	assert.Error(t, err)
}

func TestStatePersistsAcrossControllers(t *testing.T) {
	env := newTestEnv(t)
	stateStore := &MemStateStore{}

	ctrl, err := NewController(stateStore, env.gen, generator.StaticFallback{}, env.history, env.plan, env.drafts, nil, env.clk)
	require.NoError(t, err)

	_, err = ctrl.StartWithWorkout(EntryContext{Kind: EntryPlan, PlanDay: 5}, legWorkout(), nil)
	require.NoError(t, err)
	require.NoError(t, ctrl.Save())

	// A new controller (next CLI invocation) picks up where we left off.
	ctrl2, err := NewController(stateStore, env.gen, generator.StaticFallback{}, env.history, env.plan, env.drafts, nil, env.clk)
	require.NoError(t, err)
	assert.Equal(t, PhasePreview, ctrl2.Phase())
	assert.Equal(t, 5, ctrl2.State().Entry.PlanDay)
	assert.Equal(t, "Leg Day", ctrl2.State().Generated.Title)
}
