package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var proceedCmd = &cobra.Command{
	Use:   "proceed",
	Short: "Accept the soreness warning and continue to the workout preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController(nil)
		if err != nil {
			return err
		}

		if err := ctrl.ProceedAnyway(); err != nil {
			return err
		}
		if err := ctrl.Save(); err != nil {
			return err
		}

		printWorkout(ctrl.State().Generated)
		fmt.Println("\nRun 'forja begin' to start the session")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(proceedCmd)
}
