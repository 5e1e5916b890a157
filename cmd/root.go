// Package cmd implements the harborbot CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "⚓"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "harborbot",
	Short: logo + " harborbot — report delivery for Slack",
	Long:  logo + " harborbot — renders report documents into Slack Block Kit and delivers them",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(scheduleCmd)
}
