package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"forja/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() (*Storage, error) {
	// A .env file is optional; the vars may come straight from the shell.
	godotenv.Load()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("Failed to load config: %w", err)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		return nil, fmt.Errorf("No database configured: set TURSO_DATABASE_URL or database.connection_string in config.toml")
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", url, err)
	}

	if err := InitializeDB(db); err != nil {
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workout_logs (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            rating INTEGER,
            started_at TEXT NOT NULL,
            duration_min INTEGER NOT NULL,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_log_exercises (
            id TEXT PRIMARY KEY,
            workout_log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            sets TEXT NOT NULL,
            reps TEXT NOT NULL,
            weight TEXT,
            target_muscles TEXT,
            FOREIGN KEY (workout_log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS weekly_plan (
            day_index INTEGER PRIMARY KEY,
            workout TEXT NOT NULL,
            completed_at TEXT
        );

        CREATE TABLE IF NOT EXISTS templates (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            workout TEXT NOT NULL,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS profile (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            name TEXT,
            goal TEXT NOT NULL,
            experience TEXT NOT NULL,
            days_per_week INTEGER NOT NULL,
            equipment TEXT
        );
    `)
	return err
}
