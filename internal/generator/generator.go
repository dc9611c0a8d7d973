package generator

import (
	"context"

	"forja/internal/models"
)

// Service produces a workout for today from the user's profile, the
// recovery check-in, and recent history. Returning nil or an error both
// mean the same thing to the flow: use the fallback.
type Service interface {
	Generate(ctx context.Context, profile *models.Profile, recovery *models.RecoveryCheck, recentTitles []string) (*models.GeneratedWorkout, error)
}

// FallbackProvider hands out a deterministic workout when generation is
// unavailable. No I/O.
type FallbackProvider interface {
	Default(goal string, completedThisWeek int) *models.GeneratedWorkout
}
