package cmd

import (
	"os"
	"strings"

	"github.com/highcard-dev/console/internal/config"
	"github.com/highcard-dev/console/internal/utils/env"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const annotationInteractive = "interactive"

var envPath string
var loggerFormat string

var RootCmd = &cobra.Command{
	Use:   "consoled",
	Short: "Druid Console daemon serving interactive server consoles",
	Long: `Druid Console opens console sessions for managed servers.
Every session interprets console commands and drives the
start, stop and restart lifecycle of its server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.AttemptReadLocalEnvironment(envPath); err != nil {
			return err
		}

		format := loggerFormat
		// interactive views own the terminal
		if cmd.Annotations[annotationInteractive] == "true" && !cmd.Flags().Changed("log-format") {
			format = "none"
		}
		logger.Log(logger.WithFormat(format))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&loggerFormat, "log-format", "", "default", "Log format (structured, default, reduced, none)")
	RootCmd.PersistentFlags().StringVarP(&envPath, "env-file", "e", "./.env", "Path to environment file (.env), read when APP_ENV=local")

	RootCmd.AddCommand(ServeCommand)
	RootCmd.AddCommand(ConsoleCommand)
	RootCmd.AddCommand(AttachCommand)
	RootCmd.AddCommand(VersionCmd)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")
	viper.SetConfigName(".consoled")
	viper.AddConfigPath(home)

	viper.SetEnvPrefix("CONSOLED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	viper.ReadInConfig()
}
