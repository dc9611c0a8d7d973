package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"forja/internal/models"
)

type Template struct {
	ID        string
	Name      string
	Workout   models.GeneratedWorkout
	CreatedAt time.Time
}

// SaveTemplate stores a named workout template and returns its id.
func (s *Storage) SaveTemplate(name string, w *models.GeneratedWorkout) (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("failed to encode workout: %w", err)
	}

	id := uuid.New().String()
	_, err = s.DB.Exec(
		`INSERT INTO templates (id, name, workout, created_at) VALUES (?, ?, ?, ?)`,
		id, name, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save template %q: %w", name, err)
	}
	return id, nil
}

// GetTemplate looks a template up by id first, then by name.
func (s *Storage) GetTemplate(idOrName string) (*Template, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, workout, created_at FROM templates WHERE id = ? OR name = ? LIMIT 1`,
		idOrName, idOrName,
	)

	var t Template
	var raw, createdAt string
	err := row.Scan(&t.ID, &t.Name, &raw, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("No template %q", idOrName)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(raw), &t.Workout); err != nil {
		return nil, fmt.Errorf("failed to decode template %q: %w", idOrName, err)
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}

func (s *Storage) ListTemplates() ([]Template, error) {
	rows, err := s.DB.Query(`SELECT id, name, workout, created_at FROM templates ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var t Template
		var raw, createdAt string
		if err := rows.Scan(&t.ID, &t.Name, &raw, &createdAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(raw), &t.Workout); err != nil {
			continue
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *Storage) DeleteTemplate(idOrName string) error {
	res, err := s.DB.Exec(`DELETE FROM templates WHERE id = ? OR name = ?`, idOrName, idOrName)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("No template %q", idOrName)
	}
	return err
}
