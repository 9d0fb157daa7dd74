package cmd

import (
	"fmt"

	"github.com/devfolio/dashboard/output"
	"github.com/devfolio/dashboard/router"
	"github.com/spf13/cobra"
)

func RoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the navigation table",
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Info("Navigation table")
			for _, r := range router.Routes() {
				output.Step(fmt.Sprintf("%-12s → %s", r.Path, r.View))
			}
			return nil
		},
	}
}
