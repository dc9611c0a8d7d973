package cmd

import (
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move to the next exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(1)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Move to the previous exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(-1)
	},
}

func navigate(delta int) error {
	ctrl, drafts, err := newController(nil)
	if err != nil {
		return err
	}

	tracker, err := loadActiveTracker(ctrl, drafts)
	if err != nil {
		return err
	}

	tracker.Navigate(delta)
	drafts.Flush()

	printExercise(tracker.ActiveExercise(), tracker.ActiveIndex(), len(tracker.Exercises()))
	return nil
}

func init() {
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
}
