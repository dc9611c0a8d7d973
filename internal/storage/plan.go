package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"forja/internal/models"
)

// PlanDay is one slot of the weekly plan, day 0 = Monday.
type PlanDay struct {
	DayIndex    int
	Workout     models.GeneratedWorkout
	CompletedAt *time.Time
}

// SetPlanDay stores (or replaces) the workout for a plan day and clears
// its completion mark.
func (s *Storage) SetPlanDay(dayIndex int, w *models.GeneratedWorkout) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("Plan day must be between 0 and 6, got %d", dayIndex)
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode workout: %w", err)
	}

	_, err = s.DB.Exec(
		`INSERT OR REPLACE INTO weekly_plan (day_index, workout, completed_at) VALUES (?, ?, NULL)`,
		dayIndex, string(data),
	)
	return err
}

// GetPlanDay returns the workout planned for a day, or an error if the day
// is empty.
func (s *Storage) GetPlanDay(dayIndex int) (*models.GeneratedWorkout, error) {
	var raw string
	err := s.DB.QueryRow(
		`SELECT workout FROM weekly_plan WHERE day_index = ?`, dayIndex,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("No workout planned for day %d", dayIndex)
	}
	if err != nil {
		return nil, err
	}

	var w models.GeneratedWorkout
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode plan day %d: %w", dayIndex, err)
	}
	return &w, nil
}

// MarkDayComplete stamps a plan day as done. Invoked once per plan-entry
// attempt, after the workout itself is committed to history.
func (s *Storage) MarkDayComplete(dayIndex int) error {
	res, err := s.DB.Exec(
		`UPDATE weekly_plan SET completed_at = ? WHERE day_index = ?`,
		time.Now().UTC().Format(time.RFC3339), dayIndex,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("no plan day %d", dayIndex)
	}
	return err
}

// ListPlan returns the stored plan days in order.
func (s *Storage) ListPlan() ([]PlanDay, error) {
	rows, err := s.DB.Query(
		`SELECT day_index, workout, completed_at FROM weekly_plan ORDER BY day_index ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []PlanDay
	for rows.Next() {
		var d PlanDay
		var raw string
		var completedAt sql.NullString
		if err := rows.Scan(&d.DayIndex, &raw, &completedAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(raw), &d.Workout); err != nil {
			continue
		}
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err == nil {
				d.CompletedAt = &t
			}
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
