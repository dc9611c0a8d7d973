package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/flow"
	"forja/internal/models"
	"forja/internal/storage"
)

var (
	checkinEnergy int
	checkinSore   []string
	checkinSleep  float32
)

var checkinCmd = &cobra.Command{
	Use:   "check-in",
	Short: "Submit the recovery check-in and generate today's workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkinEnergy < 1 || checkinEnergy > 5 {
			return fmt.Errorf("Energy must be between 1 and 5")
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		ctrl, _, err := newController(st)
		if err != nil {
			return err
		}

		// From the quick gate, a full check-in means: drop the fixed
		// workout and regenerate from scratch.
		if ctrl.Phase() == flow.PhaseQuickCheck {
			if err := ctrl.EscalateToFullCheck(); err != nil {
				return err
			}
		}

		rec := &models.RecoveryCheck{
			EnergyLevel: checkinEnergy,
			SoreAreas:   checkinSore,
			SleepHours:  checkinSleep,
		}

		usedFallback, err := ctrl.SubmitRecovery(cmd.Context(), rec)
		if err != nil {
			return err
		}
		if err := ctrl.Save(); err != nil {
			return err
		}

		if usedFallback {
			color.New(color.FgYellow).Println("⚠️  Generator unavailable, serving a fallback workout instead")
		}

		printWorkout(ctrl.State().Generated)
		fmt.Println("\nRun 'forja begin' to start the session")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)

	checkinCmd.Flags().IntVarP(&checkinEnergy, "energy", "e", 0, "Energy level, 1 (wrecked) to 5 (fresh)")
	checkinCmd.Flags().StringSliceVarP(&checkinSore, "sore", "s", nil, "Muscles currently sore")
	checkinCmd.Flags().Float32Var(&checkinSleep, "sleep", 7, "Hours slept last night")
	checkinCmd.MarkFlagRequired("energy")
}
