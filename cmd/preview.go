package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forja/internal/flow"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the workout waiting to be started",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController(nil)
		if err != nil {
			return err
		}

		if ctrl.Phase() != flow.PhasePreview || ctrl.State().Generated == nil {
			return fmt.Errorf("Nothing to preview (phase: %s)", ctrl.Phase())
		}

		printWorkout(ctrl.State().Generated)
		fmt.Println("\nRun 'forja begin' to start the session")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
