package flow

import (
	"context"
	"fmt"
	"time"

	"forja/internal/clock"
	"forja/internal/draft"
	"forja/internal/generator"
	"forja/internal/models"
	"forja/internal/session"
)

// HistoryStore is the workout-log collaborator. A committed save is
// authoritative; everything after it is best-effort.
type HistoryStore interface {
	SaveWorkout(title string, exercises []models.FinalizedExercise, rating int, startedAt time.Time, durationMin int) error
	RecentWorkoutTitles(n int) ([]string, error)
	WorkoutsThisWeek() (int, error)
}

// PlanStore marks weekly-plan days complete after a plan-entry attempt.
type PlanStore interface {
	MarkDayComplete(dayIndex int) error
}

// Controller sequences one workout attempt end to end: recovery check-in,
// generation (with fallback), preview, the active session, and completion.
// All phase changes go through named transitions; every exit path funnels
// into reset so no buffered state outlives an attempt.
type Controller struct {
	state    *State
	store    StateStore
	gen      generator.Service
	fallback generator.FallbackProvider
	history  HistoryStore
	plan     PlanStore
	drafts   *draft.Manager
	profile  *models.Profile
	clk      clock.Clock
}

func NewController(
	store StateStore,
	gen generator.Service,
	fallback generator.FallbackProvider,
	history HistoryStore,
	plan PlanStore,
	drafts *draft.Manager,
	profile *models.Profile,
	clk clock.Clock,
) (*Controller, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load flow state: %w", err)
	}
	if profile == nil {
		profile = models.DefaultProfile()
	}

	return &Controller{
		state:    state,
		store:    store,
		gen:      gen,
		fallback: fallback,
		history:  history,
		plan:     plan,
		drafts:   drafts,
		profile:  profile,
		clk:      clk,
	}, nil
}

func (c *Controller) State() *State { return c.state }
func (c *Controller) Phase() Phase  { return c.state.Phase }

// Save persists the current flow state for the next invocation.
func (c *Controller) Save() error {
	return c.store.Save(c.state)
}

func (c *Controller) requirePhase(want Phase) error {
	if c.state.Phase != want {
		return fmt.Errorf("wrong phase: need %s, currently %s", want, c.state.Phase)
	}
	return nil
}

// StartManual begins a manual attempt with the full recovery check-in.
func (c *Controller) StartManual() error {
	if err := c.requirePhase(PhaseIdle); err != nil {
		return err
	}

	c.state.Entry = EntryContext{Kind: EntryManual}
	c.state.Phase = PhaseRecoveryCheck
	return nil
}

// StartWithWorkout begins a plan/template/custom attempt, whose workout is
// already fixed. The quick recovery gate runs here: a soreness conflict
// parks the attempt in the quick-check phase awaiting proceed, escalate or
// cancel; otherwise the attempt goes straight to preview without touching
// the generator.
func (c *Controller) StartWithWorkout(entry EntryContext, w *models.GeneratedWorkout, soreAreas []string) ([]string, error) {
	if err := c.requirePhase(PhaseIdle); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("no workout to start")
	}

	c.state.Entry = entry
	c.state.Generated = w

	conflicts := MuscleConflicts(w, soreAreas)
	if len(conflicts) > 0 {
		c.state.Quick = &QuickContext{SoreAreas: soreAreas, Conflicts: conflicts}
		c.state.Phase = PhaseQuickCheck
		return conflicts, nil
	}

	c.state.Phase = PhasePreview
	return nil, nil
}

// ProceedAnyway accepts the soreness warning and moves on to preview.
func (c *Controller) ProceedAnyway() error {
	if err := c.requirePhase(PhaseQuickCheck); err != nil {
		return err
	}

	c.state.Quick = nil
	c.state.Phase = PhasePreview
	return nil
}

// EscalateToFullCheck abandons the fixed workout and reroutes through the
// full recovery check-in, which will regenerate one.
func (c *Controller) EscalateToFullCheck() error {
	if err := c.requirePhase(PhaseQuickCheck); err != nil {
		return err
	}

	c.state.Generated = nil
	c.state.Quick = nil
	c.state.Phase = PhaseRecoveryCheck
	return nil
}

// SubmitRecovery records the check-in and generates a workout. Generation
// failure is never fatal: a nil result, an empty result or an error all
// substitute the deterministic fallback, and the attempt lands in preview
// either way. Returns whether the fallback was used.
func (c *Controller) SubmitRecovery(ctx context.Context, rec *models.RecoveryCheck) (usedFallback bool, err error) {
	if err := c.requirePhase(PhaseRecoveryCheck); err != nil {
		return false, err
	}

	c.state.Recovery = rec
	c.state.Phase = PhaseGenerating

	var recent []string
	if c.history != nil {
		recent, _ = c.history.RecentWorkoutTitles(5)
	}

	w, genErr := c.gen.Generate(ctx, c.profile, rec, recent)
	if genErr != nil || w == nil || len(w.Exercises) == 0 {
		completed := 0
		if c.history != nil {
			completed, _ = c.history.WorkoutsThisWeek()
		}
		w = c.fallback.Default(c.profile.Goal, completed)
		usedFallback = true
	}

	c.state.Generated = w
	c.state.UsedFallback = usedFallback
	c.state.Phase = PhasePreview
	return usedFallback, nil
}

// ConfirmStart fixes the session start timestamp and enters the active
// phase. A workout with zero exercises cannot start a session; the only
// way forward from that is Cancel.
func (c *Controller) ConfirmStart() error {
	if err := c.requirePhase(PhasePreview); err != nil {
		return err
	}
	if c.state.Generated == nil || len(c.state.Generated.Exercises) == 0 {
		return session.ErrNoExercises
	}

	c.state.StartedAt = c.clk.Now()
	c.state.Phase = PhaseActive
	return nil
}

// CompleteSession buffers the finalized log, moving to the completed phase
// where the user rates or dismisses the summary.
func (c *Controller) CompleteSession(finalized []models.FinalizedExercise, durationMin int) error {
	if err := c.requirePhase(PhaseActive); err != nil {
		return err
	}

	c.state.PendingLog = finalized
	c.state.PendingMin = durationMin
	c.state.Phase = PhaseCompleted
	return nil
}

// FinishAttempt commits the buffered log to history and closes the
// attempt. On commit failure the log is kept and the phase stays
// completed, so the user can retry; the draft is only cleared once the
// commit call has gone through. A failed plan-day side effect after a
// committed save is a soft warning, never an error.
func (c *Controller) FinishAttempt(rating int) (warning string, err error) {
	if err := c.requirePhase(PhaseCompleted); err != nil {
		return "", err
	}

	title := ""
	if c.state.Generated != nil {
		title = c.state.Generated.Title
	}

	if err := c.history.SaveWorkout(title, c.state.PendingLog, rating, c.state.StartedAt, c.state.PendingMin); err != nil {
		return "", fmt.Errorf("Failed to save workout, your session is still here, try again: %w", err)
	}

	if c.drafts != nil {
		c.drafts.Clear()
	}

	if c.state.Entry.Kind == EntryPlan && c.plan != nil {
		if planErr := c.plan.MarkDayComplete(c.state.Entry.PlanDay); planErr != nil {
			warning = fmt.Sprintf("Workout saved, but marking plan day %d complete failed: %v", c.state.Entry.PlanDay, planErr)
		}
	}

	c.reset()
	return warning, nil
}

// Cancel abandons the attempt from any phase. The caller is responsible
// for confirming the discard when completed sets exist.
func (c *Controller) Cancel() error {
	if c.state.Phase == PhaseIdle {
		return fmt.Errorf("no attempt in progress")
	}

	if c.drafts != nil {
		c.drafts.Clear()
	}
	c.reset()
	return nil
}

// reset clears the whole attempt in one operation. Replacing the state
// struct wholesale is what makes the cleanup atomic: there is no list of
// fields to forget one of.
func (c *Controller) reset() {
	c.state = newIdleState()
}
