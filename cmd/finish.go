package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/flow"
	"forja/internal/storage"
)

var finishRating int

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finalize the session and save it to your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		ctrl, drafts, err := newController(st)
		if err != nil {
			return err
		}

		// A previous finish may have committed nothing (network down);
		// in that case the phase is already completed and the buffered
		// log is retried as-is.
		if ctrl.Phase() == flow.PhaseActive {
			tracker, err := loadActiveTracker(ctrl, drafts)
			if err != nil {
				return err
			}

			finalized := tracker.Finalize()
			durationMin := int(time.Since(ctrl.State().StartedAt).Minutes())
			if err := ctrl.CompleteSession(finalized, durationMin); err != nil {
				return err
			}
		}

		warning, err := ctrl.FinishAttempt(finishRating)
		if err != nil {
			// Keep the completed state around for a retry.
			ctrl.Save()
			return err
		}
		if err := ctrl.Save(); err != nil {
			return err
		}

		if warning != "" {
			color.New(color.FgYellow).Printf("⚠️  %s\n", warning)
		}
		fmt.Println("✅ Workout saved")
		return nil
	},
}

func init() {
	finishCmd.Flags().IntVarP(&finishRating, "rating", "R", 0, "Rate the session 1-5 (0 = unrated)")
	rootCmd.AddCommand(finishCmd)
}
