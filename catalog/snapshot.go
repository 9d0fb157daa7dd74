package catalog

import (
	"fmt"
	"regexp"

	"github.com/devfolio/dashboard/model"
)

var lastUpdateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Snapshot is one immutable version of the catalog.
// Holders must not modify the slices it carries.
type Snapshot struct {
	Version  uint64                 `json:"version" yaml:"-"`
	Projects []model.Project        `json:"projects" yaml:"projects"`
	Activity []model.CommitActivity `json:"activity" yaml:"activity"`
	Tasks    []model.Task           `json:"tasks" yaml:"tasks"`
	Profile  model.Profile          `json:"profile" yaml:"profile"`
}

// Validate checks the record invariants. Every returned error wraps
// model.ErrInvalidCatalog.
func (s Snapshot) Validate() error {
	ids := make(map[int64]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: duplicate project id %d", model.ErrInvalidCatalog, p.ID)
		}
		ids[p.ID] = struct{}{}

		switch {
		case p.Stars < 0:
			return fmt.Errorf("%w: project %d has negative stars", model.ErrInvalidCatalog, p.ID)
		case p.Commits < 0:
			return fmt.Errorf("%w: project %d has negative commits", model.ErrInvalidCatalog, p.ID)
		case p.Contributors < 1:
			return fmt.Errorf("%w: project %d needs at least one contributor", model.ErrInvalidCatalog, p.ID)
		case p.LastUpdate != "" && !lastUpdateFormat.MatchString(p.LastUpdate):
			return fmt.Errorf("%w: project %d has malformed last update %q", model.ErrInvalidCatalog, p.ID, p.LastUpdate)
		}
	}

	periods := make(map[string]struct{}, len(s.Activity))
	for _, a := range s.Activity {
		if _, dup := periods[a.Period]; dup {
			return fmt.Errorf("%w: duplicate activity period %q", model.ErrInvalidCatalog, a.Period)
		}
		periods[a.Period] = struct{}{}

		if a.Commits < 0 {
			return fmt.Errorf("%w: period %q has negative commits", model.ErrInvalidCatalog, a.Period)
		}
	}

	for _, task := range s.Tasks {
		if _, found := ids[task.ProjectID]; !found {
			return fmt.Errorf("%w: task %d references unknown project %d", model.ErrInvalidCatalog, task.ID, task.ProjectID)
		}
		if !task.Status.Valid() {
			return fmt.Errorf("%w: task %d has unknown status %q", model.ErrInvalidCatalog, task.ID, task.Status)
		}
	}

	return nil
}

// Project looks a project up by id
func (s Snapshot) Project(id int64) (model.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}
