package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"forja/internal/clock"
	"forja/internal/config"
	"forja/internal/draft"
	"forja/internal/flow"
	"forja/internal/generator"
	"forja/internal/models"
	"forja/internal/session"
	"forja/internal/storage"
)

func newDraftManager() (*draft.Manager, error) {
	store, err := draft.NewFileStore()
	if err != nil {
		return nil, fmt.Errorf("Failed to open draft store: %w", err)
	}

	m := draft.NewManager(store, clock.System{})
	m.OnSaveError = func(err error) {
		color.New(color.FgYellow).Fprintf(os.Stderr, "⚠️  Autosave disabled for this session: %v\n", err)
	}
	return m, nil
}

// newController wires the flow state machine. st may be nil for commands
// that never touch the database (set logging, navigation, cancel).
func newController(st *storage.Storage) (*flow.Controller, *draft.Manager, error) {
	stateStore, err := flow.NewFileStateStore()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to open flow state: %w", err)
	}

	drafts, err := newDraftManager()
	if err != nil {
		return nil, nil, err
	}

	var history flow.HistoryStore
	var plan flow.PlanStore
	profile := models.DefaultProfile()
	if st != nil {
		history = st
		plan = st
		if p, err := st.GetProfile(); err == nil {
			profile = p
		}
	}

	ctrl, err := flow.NewController(stateStore, newGenerator(), generator.StaticFallback{}, history, plan, drafts, profile, clock.System{})
	if err != nil {
		return nil, nil, err
	}
	return ctrl, drafts, nil
}

func newGenerator() generator.Service {
	godotenv.Load()

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return unavailableGenerator{}
	}

	model := ""
	if cfg, err := config.LoadConfig(); err == nil {
		model = cfg.OpenAI.Model
	}
	return generator.NewOpenAIService(key, model)
}

// unavailableGenerator stands in when no API key is configured; the flow
// treats its error like any other generation failure and falls back.
type unavailableGenerator struct{}

func (unavailableGenerator) Generate(context.Context, *models.Profile, *models.RecoveryCheck, []string) (*models.GeneratedWorkout, error) {
	return nil, fmt.Errorf("OPENAI_API_KEY not set")
}

// loadActiveTracker rebuilds the session tracker from the draft. Only
// valid while the flow is in the active phase.
func loadActiveTracker(ctrl *flow.Controller, drafts *draft.Manager) (*session.Tracker, error) {
	if ctrl.Phase() != flow.PhaseActive {
		return nil, fmt.Errorf("No active session (phase: %s)", ctrl.Phase())
	}

	d, ok := drafts.Load()
	if !ok {
		return nil, fmt.Errorf("No session draft found; run 'forja cancel' and start over")
	}

	return session.NewFromDraft(d, clock.System{}, drafts)
}
