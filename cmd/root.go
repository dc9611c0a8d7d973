package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forja",
	Short: "AI-assisted training CLI: check in, generate a workout, log your session",
}

func Execute() error {
	return rootCmd.Execute()
}
