package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"forja/internal/clock"
	"forja/internal/draft"
	"forja/internal/models"
)

// DefaultRestSeconds is used when an exercise spec carries no rest time.
const DefaultRestSeconds = 90

// ErrNoExercises marks the degenerate case of a workout with an empty
// exercise list; a session cannot meaningfully start from one.
var ErrNoExercises = errors.New("workout has no exercises")

type SetField string

const (
	FieldWeight SetField = "weight"
	FieldReps   SetField = "reps"
)

// Tracker owns the mutable in-progress log for one active session. Every
// mutation schedules a debounced draft save so an unexpected exit loses at
// most a couple of seconds of edits.
type Tracker struct {
	title        string
	exercises    []models.TrackedExercise
	active       int
	sessionStart time.Time // fixed when the user confirmed start, survives resumes
	resumedAt    time.Time // when this tracker instance came up
	elapsedBase  time.Duration
	clk          clock.Clock
	drafts       *draft.Manager
}

// NewFromWorkout seeds a fresh session: each exercise gets its target
// number of empty set records.
func NewFromWorkout(w *models.GeneratedWorkout, clk clock.Clock, drafts *draft.Manager) (*Tracker, error) {
	if len(w.Exercises) == 0 {
		return nil, ErrNoExercises
	}

	exercises := make([]models.TrackedExercise, 0, len(w.Exercises))
	for _, spec := range w.Exercises {
		ex := models.TrackedExercise{
			ID:            uuid.New().String(),
			Name:          spec.Name,
			TargetSets:    spec.TargetSets,
			TargetReps:    spec.TargetReps,
			TargetMuscles: spec.TargetMuscles,
			RestSeconds:   spec.RestSeconds,
			Notes:         spec.Notes,
		}
		for i := 0; i < spec.TargetSets; i++ {
			ex.Sets = append(ex.Sets, models.SetRecord{Ordinal: i + 1})
		}
		exercises = append(exercises, ex)
	}

	now := clk.Now()
	return &Tracker{
		title:        w.Title,
		exercises:    exercises,
		sessionStart: now,
		resumedAt:    now,
		clk:          clk,
		drafts:       drafts,
	}, nil
}

// NewFromDraft restores a recovered session exactly, including the active
// exercise index and the elapsed-time baseline.
func NewFromDraft(d *models.WorkoutDraft, clk clock.Clock, drafts *draft.Manager) (*Tracker, error) {
	if len(d.Exercises) == 0 {
		return nil, ErrNoExercises
	}

	active := d.ActiveIndex
	if active < 0 || active >= len(d.Exercises) {
		active = 0
	}

	now := clk.Now()
	start := d.StartTime
	if start.IsZero() {
		start = now
	}

	return &Tracker{
		title:        d.Title,
		exercises:    d.Exercises,
		active:       active,
		sessionStart: start,
		resumedAt:    now,
		elapsedBase:  time.Duration(d.ElapsedSeconds) * time.Second,
		clk:          clk,
		drafts:       drafts,
	}, nil
}

func (t *Tracker) Title() string                       { return t.title }
func (t *Tracker) Exercises() []models.TrackedExercise { return t.exercises }
func (t *Tracker) ActiveIndex() int                    { return t.active }

func (t *Tracker) ActiveExercise() *models.TrackedExercise {
	return &t.exercises[t.active]
}

// Elapsed is the restored baseline plus time in this instance, so a
// resumed session does not count the gap the app spent dead.
func (t *Tracker) Elapsed() time.Duration {
	return t.elapsedBase + t.clk.Now().Sub(t.resumedAt)
}

// UpdateSet stores a free-form weight or reps value on a set of the active
// exercise. No validation here; parsing happens at read time.
func (t *Tracker) UpdateSet(ordinal int, field SetField, value string) error {
	set := t.findSet(ordinal)
	if set == nil {
		return fmt.Errorf("no set %d on %s", ordinal, t.ActiveExercise().Name)
	}

	switch field {
	case FieldWeight:
		set.Weight = value
	case FieldReps:
		set.Reps = value
	default:
		return fmt.Errorf("unknown set field %q", field)
	}

	t.autosave()
	return nil
}

// ToggleSet flips a set's completed flag. Only the false→true transition
// opens the rest timer; un-completing a set has no side effect.
func (t *Tracker) ToggleSet(ordinal int) (restSeconds int, opened bool, err error) {
	set := t.findSet(ordinal)
	if set == nil {
		return 0, false, fmt.Errorf("no set %d on %s", ordinal, t.ActiveExercise().Name)
	}

	set.Completed = !set.Completed
	t.autosave()

	if !set.Completed {
		return 0, false, nil
	}

	restSeconds = t.ActiveExercise().RestSeconds
	if restSeconds <= 0 {
		restSeconds = DefaultRestSeconds
	}
	return restSeconds, true, nil
}

// AddSet appends a set to the active exercise, carrying the previous set's
// weight over as a starting placeholder.
func (t *Tracker) AddSet() models.SetRecord {
	ex := t.ActiveExercise()

	set := models.SetRecord{Ordinal: len(ex.Sets) + 1}
	if n := len(ex.Sets); n > 0 {
		set.Weight = ex.Sets[n-1].Weight
	}

	ex.Sets = append(ex.Sets, set)
	ex.TargetSets++
	t.autosave()
	return set
}

// Navigate moves the active exercise index by delta, clamped to bounds.
func (t *Tracker) Navigate(delta int) int {
	t.active += delta
	if t.active < 0 {
		t.active = 0
	}
	if t.active > len(t.exercises)-1 {
		t.active = len(t.exercises) - 1
	}
	t.autosave()
	return t.active
}

// Progress is 0-100, recomputed on every read.
func (t *Tracker) Progress() int {
	total, completed := 0, 0
	for _, ex := range t.exercises {
		total += len(ex.Sets)
		completed += ex.CompletedSets()
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CompletedSets counts completed sets across every exercise; the cancel
// flow uses it to decide whether discarding needs confirmation.
func (t *Tracker) CompletedSets() int {
	n := 0
	for _, ex := range t.exercises {
		n += ex.CompletedSets()
	}
	return n
}

// SessionVolume sums weight x reps over completed sets. Unparsable fields
// contribute zero.
func (t *Tracker) SessionVolume() float64 {
	var volume float64
	for _, ex := range t.exercises {
		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			w := parseNum(s.Weight)
			r := parseNum(s.Reps)
			volume += w * r
		}
	}
	return volume
}

// Finalize converts the in-progress log into the persisted shape. Only
// completed sets contribute. Reps become the comma-joined recorded values
// (target scheme if none were recorded); weight becomes the rounded average
// over completed sets whose weight parses positive; blank and zero weights
// are excluded from the average, not averaged in as zero. Exercises with no
// completed sets still show up, with sets "0".
func (t *Tracker) Finalize() []models.FinalizedExercise {
	out := make([]models.FinalizedExercise, 0, len(t.exercises))
	for _, ex := range t.exercises {
		fin := models.FinalizedExercise{
			Name:          ex.Name,
			TargetMuscles: ex.TargetMuscles,
		}

		var reps []string
		var weightSum float64
		var weightCount int
		completed := 0

		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			completed++
			if strings.TrimSpace(s.Reps) != "" {
				reps = append(reps, strings.TrimSpace(s.Reps))
			}
			if w := parseNum(s.Weight); w > 0 {
				weightSum += w
				weightCount++
			}
		}

		fin.Sets = strconv.Itoa(completed)
		if len(reps) > 0 {
			fin.Reps = strings.Join(reps, ",")
		} else {
			fin.Reps = ex.TargetReps
		}
		if weightCount > 0 {
			fin.Weight = strconv.Itoa(int(math.Round(weightSum / float64(weightCount))))
		}

		out = append(out, fin)
	}
	return out
}

// Snapshot builds the draft blob for persistence.
func (t *Tracker) Snapshot() models.WorkoutDraft {
	return models.WorkoutDraft{
		Title:          t.title,
		Exercises:      t.exercises,
		ActiveIndex:    t.active,
		ElapsedSeconds: int(t.Elapsed().Seconds()),
		StartTime:      t.sessionStart,
	}
}

func (t *Tracker) findSet(ordinal int) *models.SetRecord {
	ex := t.ActiveExercise()
	for i := range ex.Sets {
		if ex.Sets[i].Ordinal == ordinal {
			return &ex.Sets[i]
		}
	}
	return nil
}

func (t *Tracker) autosave() {
	if t.drafts != nil {
		t.drafts.Schedule(t.Snapshot())
	}
}

func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
