package cmd

import (
	constants "github.com/highcard-dev/console/internal"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print consoled version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Version:", constants.Version)
		return nil
	},
}
