package model

// Project is one entry of the portfolio catalog
type Project struct {
	ID           int64    `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Stars        int      `json:"stars" yaml:"stars"`
	Commits      int      `json:"commits" yaml:"commits"`
	URL          string   `json:"url" yaml:"url"`
	Contributors int      `json:"contributors" yaml:"contributors"`
	LastUpdate   string   `json:"lastUpdate" yaml:"lastUpdate"` // YYYY-MM-DD
}

// CommitActivity is a commit count for one period, usually a year-month
type CommitActivity struct {
	Period  string `json:"date" yaml:"date"`
	Commits int    `json:"commits" yaml:"commits"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

type Task struct {
	ID        int64      `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	ProjectID int64      `json:"projectId" yaml:"projectId"`
	Status    TaskStatus `json:"status" yaml:"status"`
	Due       string     `json:"due" yaml:"due"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Bio      string `json:"bio" yaml:"bio"`
	Location string `json:"location" yaml:"location"`
	Links    []Link `json:"links" yaml:"links"`
}

// PortfolioStats are the totals shown on the profile and dashboard views
type PortfolioStats struct {
	Projects     int `json:"projects"`
	Stars        int `json:"stars"`
	Commits      int `json:"commits"`
	Contributors int `json:"contributors"`
	Technologies int `json:"technologies"`
}
