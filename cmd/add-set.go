package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addSetCmd = &cobra.Command{
	Use:   "add-set",
	Short: "Add an extra set to the current exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, drafts, err := newController(nil)
		if err != nil {
			return err
		}

		tracker, err := loadActiveTracker(ctrl, drafts)
		if err != nil {
			return err
		}

		set := tracker.AddSet()
		drafts.Flush()

		fmt.Printf("✅ Added set %d to '%s'\n", set.Ordinal, tracker.ActiveExercise().Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSetCmd)
}
