// Package aggregate derives chart-ready data from catalog records.
// Every function is pure: the same input always yields the same output and
// inputs are never modified.
package aggregate

import "github.com/devfolio/dashboard/model"

// TallyTechnologies counts technology occurrences across projects, keyed in
// first-seen order. A project listing a technology twice counts twice.
func TallyTechnologies(projects []model.Project) model.TechnologyTally {
	tally := model.NewTechnologyTally()

	for _, project := range projects {
		for _, tech := range project.Technologies {
			tally.Add(tech)
		}
	}

	return tally
}

// BuildActivitySeries splits samples into aligned label and commit slices,
// preserving input order
func BuildActivitySeries(activity []model.CommitActivity) model.ActivitySeries {
	series := model.ActivitySeries{
		Labels:  make([]string, len(activity)),
		Commits: make([]int, len(activity)),
	}

	for i, sample := range activity {
		series.Labels[i] = sample.Period
		series.Commits[i] = sample.Commits
	}

	return series
}

// Stats computes the portfolio totals
func Stats(projects []model.Project) model.PortfolioStats {
	stats := model.PortfolioStats{Projects: len(projects)}

	for _, p := range projects {
		stats.Stars += p.Stars
		stats.Commits += p.Commits
		stats.Contributors += p.Contributors
	}

	stats.Technologies = TallyTechnologies(projects).Len()
	return stats
}
