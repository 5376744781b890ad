package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/highcard-dev/console/cmd/tui"
	"github.com/highcard-dev/console/internal/config"
	"github.com/highcard-dev/console/internal/core/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ConsoleCommand = &cobra.Command{
	Use:   "console <server-id> <server-name>",
	Short: "Open an interactive console for one server",
	Long: `Opens a console session in this process and renders it in the terminal.
The session lives as long as the view; Ctrl+C or Esc closes both.`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		session, err := services.OpenSession(args[0], args[1], services.SessionOptions{
			Plans:   cfg.Plans,
			Metrics: newMetricsProvider(cfg),
		})
		if err != nil {
			return err
		}
		defer session.Close()

		program := tea.NewProgram(tui.NewConsoleView(session), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}
