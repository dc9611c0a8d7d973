package storage

import (
	"database/sql"
	"encoding/json"

	"forja/internal/models"
)

// GetProfile returns the stored profile, or the documented defaults when
// nothing was ever saved.
func (s *Storage) GetProfile() (*models.Profile, error) {
	row := s.DB.QueryRow(
		`SELECT name, goal, experience, days_per_week, equipment FROM profile WHERE id = 1`,
	)

	var p models.Profile
	var name, equipment sql.NullString
	err := row.Scan(&name, &p.Goal, &p.Experience, &p.DaysPerWeek, &equipment)
	if err == sql.ErrNoRows {
		return models.DefaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}

	p.Name = name.String
	if equipment.Valid && equipment.String != "" {
		json.Unmarshal([]byte(equipment.String), &p.Equipment)
	}
	return &p, nil
}

func (s *Storage) SaveProfile(p *models.Profile) error {
	equipment, err := json.Marshal(p.Equipment)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(
		`INSERT OR REPLACE INTO profile (id, name, goal, experience, days_per_week, equipment)
         VALUES (1, ?, ?, ?, ?, ?)`,
		p.Name, p.Goal, p.Experience, p.DaysPerWeek, string(equipment),
	)
	return err
}
