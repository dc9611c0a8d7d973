package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"forja/internal/clock"
	"forja/internal/session"
	"forja/internal/timer"
	"forja/internal/tui"
)

var restCmd = &cobra.Command{
	Use:   "rest [seconds]",
	Short: "Run a rest countdown (defaults to the current exercise's rest time)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds := 0
		exercise := ""

		if len(args) == 1 {
			var err error
			seconds, err = strconv.Atoi(args[0])
			if err != nil || seconds < 1 {
				return fmt.Errorf("Invalid rest duration. Must be a positive number of seconds")
			}
		} else {
			ctrl, drafts, err := newController(nil)
			if err != nil {
				return err
			}

			tracker, err := loadActiveTracker(ctrl, drafts)
			if err != nil {
				return fmt.Errorf("No active session; pass a duration: forja rest 90")
			}

			exercise = tracker.ActiveExercise().Name
			seconds = tracker.ActiveExercise().RestSeconds
			if seconds <= 0 {
				seconds = session.DefaultRestSeconds
			}
		}

		rt := timer.New(clock.System{}, time.Duration(seconds)*time.Second)
		result, err := tui.RunRestTimer(rt, exercise)
		if err != nil {
			return err
		}

		if result.Skipped {
			rested := seconds - int(result.SkippedRemaining.Round(time.Second).Seconds())
			fmt.Printf("Rest skipped after %ds (planned %ds)\n", rested, seconds)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
}
