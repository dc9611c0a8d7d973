package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"forja/internal/session"
)

var (
	logSetWeight string
	logSetReps   string
)

var logSetCmd = &cobra.Command{
	Use:   "log-set [set-number]",
	Short: "Record weight and/or reps on a set of the current exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ordinal, err := strconv.Atoi(args[0])
		if err != nil || ordinal < 1 {
			return fmt.Errorf("Invalid set number. Must be a positive integer")
		}

		ctrl, drafts, err := newController(nil)
		if err != nil {
			return err
		}

		tracker, err := loadActiveTracker(ctrl, drafts)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("weight") && !cmd.Flags().Changed("reps") {
			return fmt.Errorf("Nothing to log: pass --weight and/or --reps")
		}

		if cmd.Flags().Changed("weight") {
			if err := tracker.UpdateSet(ordinal, session.FieldWeight, logSetWeight); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("reps") {
			if err := tracker.UpdateSet(ordinal, session.FieldReps, logSetReps); err != nil {
				return err
			}
		}

		drafts.Flush()
		printExercise(tracker.ActiveExercise(), tracker.ActiveIndex(), len(tracker.Exercises()))
		return nil
	},
}

func init() {
	logSetCmd.Flags().StringVarP(&logSetWeight, "weight", "w", "", "Weight used")
	logSetCmd.Flags().StringVarP(&logSetReps, "reps", "r", "", "Reps performed")
	rootCmd.AddCommand(logSetCmd)
}
