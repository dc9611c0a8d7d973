package flow

import (
	"sort"
	"strings"

	"forja/internal/models"
)

// MuscleConflicts returns the muscles the workout targets that the user
// just reported sore, lowercased and sorted. Case and surrounding
// whitespace do not count as differences.
func MuscleConflicts(w *models.GeneratedWorkout, soreAreas []string) []string {
	if w == nil || len(soreAreas) == 0 {
		return nil
	}

	targets := w.TargetMuscleSet()

	seen := make(map[string]bool)
	var conflicts []string
	for _, sore := range soreAreas {
		s := strings.ToLower(strings.TrimSpace(sore))
		if s == "" || seen[s] {
			continue
		}
		if targets[s] {
			conflicts = append(conflicts, s)
			seen[s] = true
		}
	}

	sort.Strings(conflicts)
	return conflicts
}
