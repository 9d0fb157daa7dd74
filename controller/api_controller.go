package controller

import (
	"net/http"

	"github.com/devfolio/dashboard/chart"
	"github.com/devfolio/dashboard/config"
	"github.com/devfolio/dashboard/model"
	"github.com/devfolio/dashboard/router"
	"github.com/devfolio/dashboard/service"
	"github.com/gin-gonic/gin"
)

type APIController interface {
	GetProjects(ctx *gin.Context)
	GetActivity(ctx *gin.Context)
	GetTechnologies(ctx *gin.Context)
	GetTechnologiesChart(ctx *gin.Context)
	GetActivityChart(ctx *gin.Context)
	GetStats(ctx *gin.Context)
	GetRoutes(ctx *gin.Context)
	ReloadCatalog(ctx *gin.Context)
}

type apiController struct {
	dashboardService service.DashboardService
	config           config.Config
}

func NewAPIController(config config.Config, service service.DashboardService) APIController {
	return apiController{
		dashboardService: service,
		config:           config,
	}
}

func (s apiController) GetProjects(c *gin.Context) {
	var query model.ProjectQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.APIError{Code: "INVALID_QUERY", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.dashboardService.Projects(query))
}

func (s apiController) GetActivity(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboardService.Snapshot().Activity)
}

func (s apiController) GetTechnologies(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboardService.Aggregates().Tally)
}

func (s apiController) GetTechnologiesChart(c *gin.Context) {
	c.JSON(http.StatusOK, chart.Technologies(s.dashboardService.Aggregates().Tally))
}

func (s apiController) GetActivityChart(c *gin.Context) {
	cfg, err := chart.Activity(s.dashboardService.Aggregates().Series, chart.ActivityOptions{
		Strict: s.config.Charts.StrictEmptySeries,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (s apiController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboardService.Stats())
}

func (s apiController) GetRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, router.Routes())
}

func (s apiController) ReloadCatalog(c *gin.Context) {
	snapshot, err := s.dashboardService.Reload(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":  snapshot.Version,
		"source":   s.dashboardService.SourceName(),
		"projects": len(snapshot.Projects),
	})
}
