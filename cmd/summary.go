package cmd

import (
	"fmt"

	"github.com/devfolio/dashboard/aggregate"
	"github.com/devfolio/dashboard/output"
	"github.com/spf13/cobra"
)

func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the technology tally and the commit activity of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			source, err := NewSource(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			snapshot, err := source.Load(cmd.Context())
			if err != nil {
				output.Error(fmt.Sprintf("Unable to load catalog from %s: %v", source.Name(), err))
				return err
			}

			tally := aggregate.TallyTechnologies(snapshot.Projects)
			series := aggregate.BuildActivitySeries(snapshot.Activity)

			output.Info(fmt.Sprintf("Technologies (%d projects)", len(snapshot.Projects)))
			output.Bars(tally.Names(), tally.Counts())

			output.Info("Commit activity")
			output.Bars(series.Labels, series.Commits)

			if highest, ok := series.Max(); ok {
				output.Success(fmt.Sprintf("Maximum: %d commits", highest))
			} else {
				output.Step("No maximum: the activity series is empty")
			}

			return nil
		},
	}
}
