package cmd

import (
	"github.com/devfolio/dashboard/config"
	"github.com/devfolio/dashboard/logger"
	"github.com/spf13/cobra"
)

// RootCmd creates the dashboard command tree. Without a subcommand it serves
// the dashboard.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Portfolio dashboard: projects, analytics charts and tasks",
		Long: `Serves a dashboard over a catalog of software projects.

The catalog comes from the built-in sample data, a YAML/JSON file or the
public repositories of a GitHub owner (CATALOG.Source in config/config.toml).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(ServeCmd())
	cmd.AddCommand(RoutesCmd())
	cmd.AddCommand(SummaryCmd())

	return cmd
}

// loadConfig reads the configuration and sets the logger up
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Setup(*cfg)
	return cfg, nil
}
