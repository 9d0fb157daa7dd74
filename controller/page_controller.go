package controller

import (
	"net/http"

	"github.com/devfolio/dashboard/aggregate"
	"github.com/devfolio/dashboard/catalog"
	"github.com/devfolio/dashboard/chart"
	"github.com/devfolio/dashboard/model"
	"github.com/devfolio/dashboard/router"
	"github.com/devfolio/dashboard/service"
	"github.com/devfolio/dashboard/view"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type PageController interface {
	Render(name view.Name) gin.HandlerFunc
	NotFound(ctx *gin.Context)
}

type pageController struct {
	dashboardService service.DashboardService
	mounter          *view.Mounter
}

func NewPageController(service service.DashboardService, mounter *view.Mounter) PageController {
	return pageController{
		dashboardService: service,
		mounter:          mounter,
	}
}

// clientData is handed to the browser script that mounts charts and animations
type clientData struct {
	Charts    map[string]chart.Config `json:"charts"`
	Animation *view.Animation         `json:"animation,omitempty"`
	Showcase  []view.Animation        `json:"showcase,omitempty"`
}

type taskRow struct {
	Title   string
	Project string
	Status  string
	Due     string
}

type pageData struct {
	View   view.Name
	Title  string
	Path   string
	Nav    []router.Route
	Client clientData

	Stats    model.PortfolioStats
	Projects []model.Project
	Query    model.ProjectQuery
	Tally    model.TechnologyTally
	HasMax   bool
	Max      int
	Tasks    []taskRow
	Profile  model.Profile
	Showcase []view.Animation
	Error    model.APIError
}

// Render mounts the view, renders it and releases its chart handles
func (s pageController) Render(name view.Name) gin.HandlerFunc {
	def, found := view.Lookup(name)
	if !found {
		log.WithField("view", name).Panic("no definition registered for view")
	}

	return func(c *gin.Context) {
		snapshot, agg := s.dashboardService.Current()

		inst, err := s.mounter.Mount(def, agg, chart.TechnologiesTarget, chart.ActivityTarget)
		if err != nil {
			_ = c.Error(err)
			s.renderError(c, def, err)
			return
		}
		defer inst.Close()

		data := s.baseData(def, c.Request.URL.Path)
		data.Client.Charts = inst.Charts()
		data.Client.Animation = def.Animation
		data.Tally = inst.Aggregates.Tally
		data.Max, data.HasMax = inst.Aggregates.Series.Max()

		switch name {
		case view.Dashboard:
			data.Stats = aggregate.Stats(snapshot.Projects)
			data.Projects = model.ProjectQuery{Sort: "updated"}.Apply(snapshot.Projects)
		case view.Projects:
			if err := c.ShouldBindQuery(&data.Query); err != nil {
				log.WithError(err).Debug("ignoring malformed project query")
			}
			data.Projects = data.Query.Apply(snapshot.Projects)
		case view.Tasks:
			data.Tasks = taskRows(snapshot)
		case view.Profile:
			data.Profile = snapshot.Profile
			data.Stats = aggregate.Stats(snapshot.Projects)
		case view.Animations:
			data.Showcase = view.Showcase()
			data.Client.Showcase = data.Showcase
		}

		c.HTML(http.StatusOK, def.Template, data)
	}
}

// renderError answers a page route whose view could not be mounted
func (s pageController) renderError(c *gin.Context, def view.Definition, err error) {
	data := s.baseData(def, c.Request.URL.Path)
	data.Error = model.NewAPIError(err)
	c.HTML(http.StatusInternalServerError, "error.html", data)
}

func (s pageController) NotFound(c *gin.Context) {
	data := s.baseData(view.Definition{Title: "Page not found"}, c.Request.URL.Path)
	c.HTML(http.StatusNotFound, "not_found.html", data)
}

func (s pageController) baseData(def view.Definition, path string) pageData {
	return pageData{
		View:   def.Name,
		Title:  def.Title,
		Path:   path,
		Nav:    router.Routes(),
		Client: clientData{Charts: map[string]chart.Config{}},
	}
}

func taskRows(snapshot catalog.Snapshot) []taskRow {
	rows := make([]taskRow, 0, len(snapshot.Tasks))
	for _, task := range snapshot.Tasks {
		row := taskRow{
			Title:  task.Title,
			Status: string(task.Status),
			Due:    task.Due,
		}

		if p, found := snapshot.Project(task.ProjectID); found {
			row.Project = p.Name
		}

		rows = append(rows, row)
	}
	return rows
}
