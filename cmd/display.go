package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"forja/internal/models"
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println("┌" + strings.Repeat("─", width-2) + "┐")
	padding := width - 2 - len(title)
	left := padding / 2
	right := padding - left
	fmt.Println("│" + strings.Repeat(" ", left) + cyanBold(title) + strings.Repeat(" ", right) + "│")
	fmt.Println("└" + strings.Repeat("─", width-2) + "┘")
}

func printMetric(label string, value interface{}) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s: %v\n", bold(label), value)
}

func printWorkout(w *models.GeneratedWorkout) {
	title := color.New(color.FgGreen, color.Bold).Sprint(w.Title)
	fmt.Println(title)
	if w.DurationMin > 0 || w.Intensity != "" {
		fmt.Printf("  ~%d min, intensity: %s\n", w.DurationMin, w.Intensity)
	}
	if w.RecoveryNotes != "" {
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(w.RecoveryNotes))
	}
	fmt.Println()

	for i, ex := range w.Exercises {
		name := color.New(color.FgMagenta, color.Bold).Sprint(ex.Name)
		fmt.Printf("  %d. %s - %dx%s", i+1, name, ex.TargetSets, ex.TargetReps)
		if ex.RestSeconds > 0 {
			fmt.Printf(" (rest %ds)", ex.RestSeconds)
		}
		fmt.Println()
		if len(ex.TargetMuscles) > 0 {
			fmt.Printf("     %s\n", strings.Join(ex.TargetMuscles, ", "))
		}
	}
}

func printExercise(ex *models.TrackedExercise, index, total int) {
	name := color.New(color.FgMagenta, color.Bold).Sprint(ex.Name)
	fmt.Printf("[%d/%d] %s - target %dx%s\n", index+1, total, name, ex.TargetSets, ex.TargetReps)
	if ex.Notes != "" {
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(ex.Notes))
	}

	for _, s := range ex.Sets {
		mark := "○"
		if s.Completed {
			mark = color.New(color.FgGreen).Sprint("✔")
		}
		weight := s.Weight
		if weight == "" {
			weight = "-"
		}
		reps := s.Reps
		if reps == "" {
			reps = "-"
		}
		fmt.Printf("  %s set %d: %s x %s\n", mark, s.Ordinal, weight, reps)
	}
}
