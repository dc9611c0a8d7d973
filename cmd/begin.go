package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/clock"
	"forja/internal/session"
)

var beginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Confirm the previewed workout and start logging",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, drafts, err := newController(nil)
		if err != nil {
			return err
		}

		if err := ctrl.ConfirmStart(); err != nil {
			if errors.Is(err, session.ErrNoExercises) {
				color.New(color.FgRed).Println("This workout has no exercises, nothing to do")
				fmt.Println("Run 'forja cancel' to go back")
				return nil
			}
			return err
		}

		tracker, err := session.NewFromWorkout(ctrl.State().Generated, clock.System{}, drafts)
		if err != nil {
			return err
		}

		// The draft exists from the first second of the active phase, so a
		// crash before any set is logged is still recoverable. A failed
		// write is surfaced through OnSaveError, not fatal here.
		drafts.SaveNow(tracker.Snapshot())

		if err := ctrl.Save(); err != nil {
			return err
		}

		fmt.Printf("✅ Session started: %s\n\n", tracker.Title())
		printExercise(tracker.ActiveExercise(), tracker.ActiveIndex(), len(tracker.Exercises()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(beginCmd)
}
