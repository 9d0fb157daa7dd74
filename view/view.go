package view

import "github.com/devfolio/dashboard/chart"

// Name identifies one routed view
type Name string

const (
	Dashboard  Name = "Dashboard"
	Analytics  Name = "Analytics"
	Projects   Name = "Projects"
	Tasks      Name = "Tasks"
	Profile    Name = "Profile"
	Animations Name = "Animations"
)

// Definition is the static description of a view: the template that renders
// it, the chart mount points it carries and its entrance animation
type Definition struct {
	Name      Name
	Title     string
	Template  string
	Targets   []string
	Animation *Animation
}

// HasTarget reports whether the view template carries the mount point id
func (d Definition) HasTarget(id string) bool {
	for _, target := range d.Targets {
		if target == id {
			return true
		}
	}
	return false
}

var definitions = map[Name]Definition{
	Dashboard: {
		Name:      Dashboard,
		Title:     "Overview",
		Template:  "dashboard.html",
		Targets:   []string{chart.ActivityTarget},
		Animation: &ProjectEntrance,
	},
	Analytics: {
		Name:     Analytics,
		Title:    "Analytics",
		Template: "analytics.html",
		Targets:  []string{chart.TechnologiesTarget, chart.ActivityTarget},
	},
	Projects: {
		Name:      Projects,
		Title:     "Projects",
		Template:  "projects.html",
		Animation: &ProjectEntrance,
	},
	Tasks: {
		Name:     Tasks,
		Title:    "Tasks",
		Template: "tasks.html",
	},
	Profile: {
		Name:     Profile,
		Title:    "Profile",
		Template: "profile.html",
		Targets:  []string{chart.TechnologiesTarget},
	},
	Animations: {
		Name:     Animations,
		Title:    "Animations",
		Template: "animations.html",
	},
}

// Lookup returns the definition registered for name
func Lookup(name Name) (Definition, bool) {
	def, found := definitions[name]
	return def, found
}
