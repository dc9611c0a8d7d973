package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/storage"
	"forja/internal/utils"
)

var (
	planSetTemplate string
	planSetCustom   string
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		days, err := st.ListPlan()
		if err != nil {
			return fmt.Errorf("failed to retrieve plan: %w", err)
		}

		if len(days) == 0 {
			fmt.Println("No plan yet: forja plan set 0 --template 'Push day'")
			return nil
		}

		printBoxedHeader("WEEKLY PLAN")
		for _, d := range days {
			mark := "○"
			if d.CompletedAt != nil {
				mark = color.New(color.FgGreen).Sprint("✔")
			}
			day := weekdays[d.DayIndex%7]
			fmt.Printf("%s %-10s %s (%d exercises)\n", mark, day, d.Workout.Title, len(d.Workout.Exercises))
		}
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set [day 0-6]",
	Short: "Plan a workout for a day of the week (0=Monday)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil || day < 0 || day > 6 {
			return fmt.Errorf("Day must be between 0 (Monday) and 6 (Sunday)")
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		switch {
		case planSetTemplate != "":
			t, err := st.GetTemplate(planSetTemplate)
			if err != nil {
				return err
			}
			if err := st.SetPlanDay(day, &t.Workout); err != nil {
				return err
			}

		case planSetCustom != "":
			w, err := utils.ParseWorkoutFromTOML(planSetCustom)
			if err != nil {
				return fmt.Errorf("Failed to read workout file: %w", err)
			}
			if err := st.SetPlanDay(day, w); err != nil {
				return err
			}

		default:
			return fmt.Errorf("Pass --template or --custom to pick the workout")
		}

		fmt.Printf("✅ Planned %s\n", weekdays[day])
		return nil
	},
}

func init() {
	planSetCmd.Flags().StringVarP(&planSetTemplate, "template", "t", "", "Template (id or name) to plan")
	planSetCmd.Flags().StringVarP(&planSetCustom, "custom", "c", "", "Custom workout TOML file to plan")

	planCmd.AddCommand(planSetCmd)
	rootCmd.AddCommand(planCmd)
}
