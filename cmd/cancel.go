package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forja/internal/flow"
)

var cancelYes bool

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abandon the current attempt without saving anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, drafts, err := newController(nil)
		if err != nil {
			return err
		}

		// Completed sets are real work; discarding them needs an explicit
		// confirmation. With zero progress the attempt just goes away.
		if ctrl.Phase() == flow.PhaseActive && !cancelYes {
			if d, ok := drafts.Load(); ok {
				if n := completedSetsInDraft(d); n > 0 {
					return fmt.Errorf("You have %d completed sets. Re-run with --yes to discard them", n)
				}
			}
		}

		if err := ctrl.Cancel(); err != nil {
			return err
		}
		if err := ctrl.Save(); err != nil {
			return err
		}

		fmt.Println("✅ Attempt cancelled")
		return nil
	},
}

func init() {
	cancelCmd.Flags().BoolVarP(&cancelYes, "yes", "y", false, "Confirm discarding completed sets")
	rootCmd.AddCommand(cancelCmd)
}
