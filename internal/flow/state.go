package flow

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"forja/internal/models"
)

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseRecoveryCheck Phase = "recovery_check"
	PhaseQuickCheck    Phase = "quick_check"
	PhaseGenerating    Phase = "generating"
	PhasePreview       Phase = "preview"
	PhaseActive        Phase = "active"
	PhaseCompleted     Phase = "completed"
)

type EntryKind string

const (
	EntryManual   EntryKind = "manual"
	EntryPlan     EntryKind = "plan"
	EntryTemplate EntryKind = "template"
	EntryCustom   EntryKind = "custom"
)

// EntryContext records how the current attempt was initiated, captured once
// when the user commits to starting. Completion reads it back to fire the
// right side effect (e.g. marking a plan day done) instead of re-deriving
// intent later.
type EntryContext struct {
	Kind       EntryKind `toml:"kind,omitempty"`
	PlanDay    int       `toml:"plan_day,omitempty"`
	TemplateID string    `toml:"template_id,omitempty"`
}

// QuickContext is the pending soreness-vs-workout conflict for plan,
// template and custom entries, awaiting proceed/escalate/cancel.
type QuickContext struct {
	SoreAreas []string `toml:"sore_areas"`
	Conflicts []string `toml:"conflicts"`
}

// State is everything one attempt buffers between phases. It persists
// between command invocations as a TOML file, and is reset as a whole on
// every exit path so no field can survive an attempt by accident.
type State struct {
	Phase        Phase                      `toml:"phase"`
	Entry        EntryContext               `toml:"entry,omitempty"`
	Recovery     *models.RecoveryCheck      `toml:"recovery,omitempty"`
	Generated    *models.GeneratedWorkout   `toml:"generated,omitempty"`
	Quick        *QuickContext              `toml:"quick,omitempty"`
	UsedFallback bool                       `toml:"used_fallback,omitempty"`
	StartedAt    time.Time                  `toml:"started_at,omitempty"`
	PendingLog   []models.FinalizedExercise `toml:"pending_log,omitempty"`
	PendingMin   int                        `toml:"pending_min,omitempty"`
}

func newIdleState() *State {
	return &State{Phase: PhaseIdle}
}

// StateStore persists flow state between invocations.
type StateStore interface {
	Load() (*State, error)
	Save(*State) error
	Clear() error
}

type FileStateStore struct {
	path string
}

func NewFileStateStore() (*FileStateStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(home, ".config", "forja")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &FileStateStore{path: filepath.Join(dir, "flow_state.toml")}, nil
}

func (s *FileStateStore) Load() (*State, error) {
	var state State
	if _, err := toml.DecodeFile(s.path, &state); err != nil {
		if os.IsNotExist(err) {
			return newIdleState(), nil
		}
		// A corrupt state file is not worth failing every command over.
		return newIdleState(), nil
	}
	if state.Phase == "" {
		state.Phase = PhaseIdle
	}
	return &state, nil
}

func (s *FileStateStore) Save(state *State) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}

func (s *FileStateStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStateStore backs controller tests.
type MemStateStore struct {
	State *State
}

func (s *MemStateStore) Load() (*State, error) {
	if s.State == nil {
		return newIdleState(), nil
	}
	return s.State, nil
}

func (s *MemStateStore) Save(state *State) error {
	s.State = state
	return nil
}

func (s *MemStateStore) Clear() error {
	s.State = nil
	return nil
}
