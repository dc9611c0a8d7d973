package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"forja/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		logs, err := st.ListWorkouts(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No workouts yet")
			return nil
		}

		printBoxedHeader("HISTORY")
		for _, l := range logs {
			title := color.New(color.FgGreen, color.Bold).Sprint(l.Title)
			fmt.Printf("%s  %s", l.StartedAt.Local().Format("2006-01-02 15:04"), title)
			if l.DurationMin > 0 {
				fmt.Printf(" (%d min)", l.DurationMin)
			}
			if l.Rating > 0 {
				fmt.Printf("  %s", strings.Repeat("★", l.Rating))
			}
			fmt.Println()

			for _, ex := range l.Exercises {
				weight := ex.Weight
				if weight == "" {
					weight = "-"
				}
				fmt.Printf("  • %s: %s sets, %s reps @ %s\n", ex.Name, ex.Sets, ex.Reps, weight)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "How many workouts to show")
	rootCmd.AddCommand(historyCmd)
}
