package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forja/internal/flow"
	"forja/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the current attempt and session progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, drafts, err := newController(nil)
		if err != nil {
			return err
		}

		printBoxedHeader("STATUS")
		printMetric("Phase", string(ctrl.Phase()))
		if kind := ctrl.State().Entry.Kind; kind != "" {
			printMetric("Entry", string(kind))
		}

		if ctrl.Phase() != flow.PhaseActive {
			if w := ctrl.State().Generated; w != nil {
				printMetric("Workout", w.Title)
			}
			return nil
		}

		tracker, err := loadActiveTracker(ctrl, drafts)
		if err != nil {
			return err
		}

		elapsed := int(time.Since(ctrl.State().StartedAt).Seconds())

		printMetric("Workout", tracker.Title())
		printMetric("Progress", fmt.Sprintf("%d%% (%d sets done)", tracker.Progress(), tracker.CompletedSets()))
		printMetric("Volume", fmt.Sprintf("%.1f kg", tracker.SessionVolume()))
		printMetric("Elapsed", utils.FormatDuration(elapsed))
		fmt.Println()

		printExercise(tracker.ActiveExercise(), tracker.ActiveIndex(), len(tracker.Exercises()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
