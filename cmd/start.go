package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/flow"
	"forja/internal/models"
	"forja/internal/storage"
	"forja/internal/utils"
)

var (
	startPlanDay  int
	startTemplate string
	startCustom   string
	startSore     []string
	startResume   bool
	startDiscard  bool
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a workout attempt (manual, plan day, template, or custom file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var st *storage.Storage
		if startPlanDay >= 0 || startTemplate != "" {
			var err error
			st, err = storage.NewStorage()
			if err != nil {
				return err
			}
		}

		ctrl, drafts, err := newController(st)
		if err != nil {
			return err
		}

		// Crash recovery: a previous attempt may have left an active phase
		// behind. Offer the draft if it is still fresh; drop everything
		// silently if not.
		if ctrl.Phase() == flow.PhaseActive {
			if d, ok := drafts.RecoveryCandidate(); ok {
				switch {
				case startResume:
					fmt.Printf("✅ Resumed session '%s' (%d sets done)\n", d.Title, completedSetsInDraft(d))
					fmt.Println("Run 'forja status' to see where you left off")
					return nil
				case startDiscard:
					if err := ctrl.Cancel(); err != nil {
						return err
					}
					if err := ctrl.Save(); err != nil {
						return err
					}
					fmt.Println("Discarded the unfinished session")
				default:
					color.New(color.FgYellow).Printf("⚠️  Found an unfinished session: '%s' (%d sets done)\n", d.Title, completedSetsInDraft(d))
					fmt.Println("Re-run with --resume to pick it up, or --discard to drop it")
					return nil
				}
			} else {
				// Stale or cross-day draft: the whole attempt is dead.
				ctrl.Cancel()
				if err := ctrl.Save(); err != nil {
					return err
				}
			}
		}

		if ctrl.Phase() != flow.PhaseIdle {
			return fmt.Errorf("An attempt is already in progress (phase: %s); run 'forja cancel' first", ctrl.Phase())
		}

		var workout *models.GeneratedWorkout
		var entry flow.EntryContext

		switch {
		case startPlanDay >= 0:
			workout, err = st.GetPlanDay(startPlanDay)
			if err != nil {
				return err
			}
			entry = flow.EntryContext{Kind: flow.EntryPlan, PlanDay: startPlanDay}

		case startTemplate != "":
			t, err := st.GetTemplate(startTemplate)
			if err != nil {
				return err
			}
			workout = &t.Workout
			entry = flow.EntryContext{Kind: flow.EntryTemplate, TemplateID: t.ID}

		case startCustom != "":
			workout, err = utils.ParseWorkoutFromTOML(startCustom)
			if err != nil {
				return fmt.Errorf("Failed to read workout file: %w", err)
			}
			entry = flow.EntryContext{Kind: flow.EntryCustom}

		default:
			if err := ctrl.StartManual(); err != nil {
				return err
			}
			if err := ctrl.Save(); err != nil {
				return err
			}
			fmt.Println("Recovery check-in first: forja check-in --energy 3 --sleep 7 [--sore legs]")
			return nil
		}

		conflicts, err := ctrl.StartWithWorkout(entry, workout, startSore)
		if err != nil {
			return err
		}
		if err := ctrl.Save(); err != nil {
			return err
		}

		if len(conflicts) > 0 {
			color.New(color.FgYellow).Printf("⚠️  This workout targets muscles you reported sore: %v\n", conflicts)
			fmt.Println("  forja proceed   - train anyway")
			fmt.Println("  forja check-in  - full check-in, regenerate the workout")
			fmt.Println("  forja cancel    - not today")
			return nil
		}

		printWorkout(workout)
		fmt.Println("\nRun 'forja begin' to start the session")
		return nil
	},
}

func completedSetsInDraft(d *models.WorkoutDraft) int {
	n := 0
	for _, ex := range d.Exercises {
		n += ex.CompletedSets()
	}
	return n
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().IntVarP(&startPlanDay, "plan", "p", -1, "Start the workout planned for this day (0=Monday)")
	startCmd.Flags().StringVarP(&startTemplate, "template", "t", "", "Start from a saved template (id or name)")
	startCmd.Flags().StringVarP(&startCustom, "custom", "c", "", "Start from a custom workout TOML file")
	startCmd.Flags().StringSliceVar(&startSore, "sore", nil, "Muscles currently sore (quick recovery gate)")
	startCmd.Flags().BoolVar(&startResume, "resume", false, "Resume an unfinished session if one is found")
	startCmd.Flags().BoolVar(&startDiscard, "discard", false, "Discard an unfinished session if one is found")
}
