package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forja/internal/storage"
)

var (
	profileGoal       string
	profileExperience string
	profileDays       int
	profileEquipment  []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the training profile the generator works from",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		p, err := st.GetProfile()
		if err != nil {
			return err
		}

		printBoxedHeader("PROFILE")
		printMetric("Goal", p.Goal)
		printMetric("Experience", p.Experience)
		printMetric("Days per week", p.DaysPerWeek)
		printMetric("Equipment", strings.Join(p.Equipment, ", "))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the training profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		p, err := st.GetProfile()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("goal") {
			p.Goal = profileGoal
		}
		if cmd.Flags().Changed("experience") {
			p.Experience = profileExperience
		}
		if cmd.Flags().Changed("days") {
			p.DaysPerWeek = profileDays
		}
		if cmd.Flags().Changed("equipment") {
			p.Equipment = profileEquipment
		}

		if err := st.SaveProfile(p); err != nil {
			return err
		}

		fmt.Println("✅ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "strength, hypertrophy, endurance or general")
	profileSetCmd.Flags().StringVar(&profileExperience, "experience", "", "beginner, intermediate or advanced")
	profileSetCmd.Flags().IntVar(&profileDays, "days", 0, "Training days per week")
	profileSetCmd.Flags().StringSliceVar(&profileEquipment, "equipment", nil, "Available equipment")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
