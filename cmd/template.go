package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forja/internal/storage"
	"forja/internal/utils"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage saved workout templates",
}

var templateImportCmd = &cobra.Command{
	Use:   "import [file.toml]",
	Short: "Save a workout TOML file as a reusable template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := utils.ParseWorkoutFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read workout file: %w", err)
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		id, err := st.SaveTemplate(w.Title, w)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Saved template '%s' (%s)\n", w.Title, id)
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		templates, err := st.ListTemplates()
		if err != nil {
			return err
		}

		if len(templates) == 0 {
			fmt.Println("No templates yet: forja template import workout.toml")
			return nil
		}

		for _, t := range templates {
			fmt.Printf("• %s (%d exercises)\n", t.Name, len(t.Workout.Exercises))
		}
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete [id-or-name]",
	Short: "Delete a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		if err := st.DeleteTemplate(args[0]); err != nil {
			return err
		}

		fmt.Println("✅ Template deleted")
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateImportCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
