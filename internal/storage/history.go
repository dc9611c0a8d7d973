package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"forja/internal/models"
)

// WorkoutLog is a committed session as read back from history.
type WorkoutLog struct {
	ID          string
	Title       string
	Rating      int
	StartedAt   time.Time
	DurationMin int
	Exercises   []models.FinalizedExercise
}

// SaveWorkout commits a finalized session. Rating 0 means unrated.
func (s *Storage) SaveWorkout(title string, exercises []models.FinalizedExercise, rating int, startedAt time.Time, durationMin int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	logID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	var ratingVal sql.NullInt64
	if rating > 0 {
		ratingVal = sql.NullInt64{Int64: int64(rating), Valid: true}
	}

	_, err = tx.Exec(
		`INSERT INTO workout_logs (id, title, rating, started_at, duration_min, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		logID, title, ratingVal, startedAt.UTC().Format(time.RFC3339), durationMin, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout log: %w", err)
	}

	for i, ex := range exercises {
		muscles, _ := json.Marshal(ex.TargetMuscles)
		_, err = tx.Exec(
			`INSERT INTO workout_log_exercises (id, workout_log_id, position, name, sets, reps, weight, target_muscles)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), logID, i, ex.Name, ex.Sets, ex.Reps, ex.Weight, string(muscles),
		)
		if err != nil {
			return fmt.Errorf("failed to insert exercise %q: %w", ex.Name, err)
		}
	}

	return tx.Commit()
}

// RecentWorkoutTitles returns the titles of the last n committed workouts,
// newest first. Fed to the generator so it avoids repeating itself.
func (s *Storage) RecentWorkoutTitles(n int) ([]string, error) {
	rows, err := s.DB.Query(
		`SELECT title FROM workout_logs ORDER BY started_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			continue
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// WorkoutsThisWeek counts committed workouts in the current ISO week.
func (s *Storage) WorkoutsThisWeek() (int, error) {
	rows, err := s.DB.Query(`SELECT started_at FROM workout_logs`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	now := time.Now()
	currentYear, currentWeek := now.ISOWeek()

	count := 0
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		year, week := t.Local().ISOWeek()
		if year == currentYear && week == currentWeek {
			count++
		}
	}
	return count, rows.Err()
}

// ListWorkouts returns committed sessions with their exercises, newest
// first.
func (s *Storage) ListWorkouts(limit int) ([]WorkoutLog, error) {
	rows, err := s.DB.Query(
		`SELECT id, title, rating, started_at, duration_min
         FROM workout_logs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []WorkoutLog
	for rows.Next() {
		var l WorkoutLog
		var rating sql.NullInt64
		var startedAt string
		if err := rows.Scan(&l.ID, &l.Title, &rating, &startedAt, &l.DurationMin); err != nil {
			continue
		}
		if rating.Valid {
			l.Rating = int(rating.Int64)
		}
		l.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range logs {
		exercises, err := s.workoutExercises(logs[i].ID)
		if err != nil {
			continue
		}
		logs[i].Exercises = exercises
	}
	return logs, nil
}

func (s *Storage) workoutExercises(logID string) ([]models.FinalizedExercise, error) {
	rows, err := s.DB.Query(
		`SELECT name, sets, reps, weight, target_muscles
         FROM workout_log_exercises WHERE workout_log_id = ? ORDER BY position ASC`, logID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.FinalizedExercise
	for rows.Next() {
		var ex models.FinalizedExercise
		var weight, muscles sql.NullString
		if err := rows.Scan(&ex.Name, &ex.Sets, &ex.Reps, &weight, &muscles); err != nil {
			continue
		}
		ex.Weight = weight.String
		if muscles.Valid && muscles.String != "" {
			json.Unmarshal([]byte(muscles.String), &ex.TargetMuscles)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}
