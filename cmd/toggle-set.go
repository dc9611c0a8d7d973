package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/clock"
	"forja/internal/timer"
	"forja/internal/tui"
)

var toggleNoTimer bool

var toggleSetCmd = &cobra.Command{
	Use:   "toggle-set [set-number]",
	Short: "Mark a set done (or undo it); completing a set opens the rest timer",
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

		restSeconds, opened, err := tracker.ToggleSet(ordinal)
		if err != nil {
			return err
		}

		// The toggle is fully persisted before any timer opens.
		drafts.Flush()

		if !opened {
			fmt.Printf("Set %d marked not done\n", ordinal)
			return nil
		}

		fmt.Printf("✅ Set %d done (%d%% of the session)\n", ordinal, tracker.Progress())

		if toggleNoTimer {
			fmt.Printf("Rest %ds, then keep going\n", restSeconds)
			return nil
		}

		rt := timer.New(clock.System{}, time.Duration(restSeconds)*time.Second)
		result, err := tui.RunRestTimer(rt, tracker.ActiveExercise().Name)
		if err != nil {
			return err
		}

		switch {
		case result.Skipped:
			rested := restSeconds - int(result.SkippedRemaining.Round(time.Second).Seconds())
			fmt.Printf("Rest skipped after %ds (planned %ds)\n", rested, restSeconds)
		case result.Completed:
			color.New(color.FgGreen).Println("Rest over, back to work")
		}
		return nil
	},
}

func init() {
	toggleSetCmd.Flags().BoolVar(&toggleNoTimer, "no-timer", false, "Skip the rest countdown UI")
	rootCmd.AddCommand(toggleSetCmd)
}
