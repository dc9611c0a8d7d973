package draft

import (
	"encoding/json"
	"sync"
	"time"

	"forja/internal/clock"
	"forja/internal/models"
)

// RecoveryWindow is how long a draft stays resumable. Past it (or across a
// calendar day) the draft is junk from an abandoned session, not something
// to offer back to the user.
const RecoveryWindow = 120 * time.Minute

const defaultDebounce = 2 * time.Second

// Manager owns the single active-session draft: debounced autosave,
// recovery-window checks on load, and the clear-exactly-once rule on
// finish/discard.
type Manager struct {
	store Store
	clk   clock.Clock

	mu       sync.Mutex
	pending  *models.WorkoutDraft
	timer    *time.Timer
	debounce time.Duration
	disabled bool

	// OnSaveError is called at most once, the first time a write fails.
	// After that autosave is disabled for the rest of the session.
	OnSaveError func(err error)
}

func NewManager(store Store, clk clock.Clock) *Manager {
	return &Manager{
		store:    store,
		clk:      clk,
		debounce: defaultDebounce,
	}
}

// Schedule queues a debounced save of the snapshot, coalescing rapid edits.
func (m *Manager) Schedule(d models.WorkoutDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disabled {
		return
	}

	m.pending = &d
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, m.flushPending)
}

func (m *Manager) flushPending() {
	m.mu.Lock()
	d := m.pending
	m.pending = nil
	m.mu.Unlock()

	if d != nil {
		m.SaveNow(*d)
	}
}

// Flush writes any pending snapshot immediately. Commands call this before
// exiting so a debounced save never fires into a dead process.
func (m *Manager) Flush() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()

	m.flushPending()
}

// Stop cancels any scheduled save without writing it.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.pending = nil
}

// SaveNow stamps and writes the snapshot, bypassing the debounce.
func (m *Manager) SaveNow(d models.WorkoutDraft) error {
	m.mu.Lock()
	if m.disabled {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	d.SavedAt = m.clk.Now()
	data, err := json.Marshal(d)
	if err == nil {
		err = m.store.Set(DraftKey, string(data))
	}
	if err != nil {
		m.mu.Lock()
		m.disabled = true
		warn := m.OnSaveError
		m.mu.Unlock()
		if warn != nil {
			warn(err)
		}
		return err
	}
	return nil
}

// Load returns the stored draft with no staleness rules applied. Used while
// a session is known to be in flight. A corrupt blob is deleted and treated
// as no draft.
func (m *Manager) Load() (*models.WorkoutDraft, bool) {
	raw, ok := m.store.Get(DraftKey)
	if !ok {
		return nil, false
	}

	var d models.WorkoutDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		m.store.Remove(DraftKey)
		return nil, false
	}
	return &d, true
}

// RecoveryCandidate applies the resume rules: the draft must have been
// saved inside RecoveryWindow and on the current local calendar day.
// Anything else is deleted silently and never offered.
func (m *Manager) RecoveryCandidate() (*models.WorkoutDraft, bool) {
	d, ok := m.Load()
	if !ok {
		return nil, false
	}

	now := m.clk.Now()
	if now.Sub(d.SavedAt) >= RecoveryWindow || !sameLocalDay(d.SavedAt, now) {
		m.store.Remove(DraftKey)
		return nil, false
	}
	return d, true
}

// Clear removes the draft. Callers invoke it exactly once per attempt:
// on confirmed discard, or after finalize has been handed to the history
// commit.
func (m *Manager) Clear() {
	m.Stop()
	m.store.Remove(DraftKey)
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
