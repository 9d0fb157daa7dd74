package model

import (
	"slices"
	"strings"
)

// ImportQuery selects the GitHub repositories imported into the catalog
type ImportQuery struct {
	Owner    string
	License  string
	Language string
}

func (params ImportQuery) ToGithubQuery(filterPublicRepositories bool) string {
	var githubQuery strings.Builder

	if filterPublicRepositories {
		githubQuery.WriteString("is:public ")
	}

	if params.Owner != "" {
		githubQuery.WriteString("user:" + params.Owner + " ")
	}

	if params.License != "" {
		githubQuery.WriteString("license:" + params.License + " ")
	}

	if params.Language != "" {
		githubQuery.WriteString("language:" + params.Language + " ")
	}

	return strings.TrimSpace(githubQuery.String())
}

// ProjectQuery filters the project list view
type ProjectQuery struct {
	Technology string `form:"technology"`
	Search     string `form:"q"`
	Sort       string `form:"sort"` // stars | commits | updated, catalog order otherwise
}

// Apply returns the matching projects. The input slice is left untouched.
func (params ProjectQuery) Apply(projects []Project) []Project {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]Project, 0, len(projects))

	for _, p := range projects {
		if params.Technology != "" && !containsFold(p.Technologies, params.Technology) {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		filtered = append(filtered, p)
	}

	switch params.Sort {
	case "stars":
		slices.SortStableFunc(filtered, func(a, b Project) int { return b.Stars - a.Stars })
	case "commits":
		slices.SortStableFunc(filtered, func(a, b Project) int { return b.Commits - a.Commits })
	case "updated":
		slices.SortStableFunc(filtered, func(a, b Project) int { return strings.Compare(b.LastUpdate, a.LastUpdate) })
	}

	return filtered
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
