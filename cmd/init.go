package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forja/internal/storage"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.DB.Close()

		fmt.Println("✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
