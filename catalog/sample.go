package catalog

import "github.com/devfolio/dashboard/model"

// SampleProjects is the built-in project list served by the static source
func SampleProjects() []model.Project {
	return []model.Project{
		{
			ID:           1,
			Name:         "SocialVibe",
			Description:  "Social network clone",
			Technologies: []string{"React", "TypeScript", "TailwindCSS", "Firebase"},
			Stars:        999,
			Commits:      555,
			URL:          "https://socialvibe.vercel.app/login",
			Contributors: 1,
			LastUpdate:   "2024-03-15",
		},
		{
			ID:           2,
			Name:         "Nuxt3 Chat",
			Description:  "Online chat built on Nuxt3 and Socket.io",
			Technologies: []string{"Nuxt3", "TypeScript", "Socket.io", "TailwindCSS"},
			Stars:        0,
			Commits:      111,
			URL:          "https://github.com/VladSolyankin/nuxt3_chat",
			Contributors: 5,
			LastUpdate:   "2024-03-20",
		},
		{
			ID:           3,
			Name:         "MusicStream",
			Description:  "MusicStream music streaming service",
			Technologies: []string{"React", "TypeScript", "TailwindCSS", "Firebase"},
			Stars:        0,
			Commits:      184,
			URL:          "https://musicstream-react.web.app/",
			Contributors: 4,
			LastUpdate:   "2024-03-18",
		},
	}
}

func SampleActivity() []model.CommitActivity {
	return []model.CommitActivity{
		{Period: "2024-01", Commits: 45},
		{Period: "2024-02", Commits: 62},
		{Period: "2024-03", Commits: 78},
		{Period: "2024-04", Commits: 56},
		{Period: "2024-05", Commits: 89},
		{Period: "2024-06", Commits: 95},
	}
}

func SampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Add dark theme toggle", ProjectID: 1, Status: model.TaskInProgress, Due: "2024-04-01"},
		{ID: 2, Title: "Paginate chat history", ProjectID: 2, Status: model.TaskTodo, Due: "2024-04-10"},
		{ID: 3, Title: "Cache album artwork", ProjectID: 3, Status: model.TaskDone, Due: "2024-03-18"},
		{ID: 4, Title: "Write onboarding guide", ProjectID: 1, Status: model.TaskTodo, Due: "2024-04-20"},
	}
}

func SampleProfile() model.Profile {
	return model.Profile{
		Name:     "Alex Rivera",
		Role:     "Frontend developer",
		Bio:      "Builds web applications with React, Vue and Nuxt.",
		Location: "Remote",
		Links: []model.Link{
			{Label: "GitHub", URL: "https://github.com/VladSolyankin"},
		},
	}
}

// SampleSnapshot bundles the sample data into a snapshot
func SampleSnapshot() Snapshot {
	return Snapshot{
		Projects: SampleProjects(),
		Activity: SampleActivity(),
		Tasks:    SampleTasks(),
		Profile:  SampleProfile(),
	}
}
