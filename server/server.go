package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/dashboard/chart"
	"github.com/devfolio/dashboard/config"
	"github.com/devfolio/dashboard/controller"
	"github.com/devfolio/dashboard/logger"
	"github.com/devfolio/dashboard/router"
	"github.com/devfolio/dashboard/service"
	"github.com/devfolio/dashboard/view"
	"github.com/devfolio/dashboard/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// NewEngine wires pages, static assets and the JSON api on a gin engine
func NewEngine(cfg config.Config, dashboardService service.DashboardService) (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery(), logger.GinMiddleware())

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(templates)
	engine.StaticFS(router.StaticPrefix, http.FS(web.Static()))

	mounter := view.NewMounter(chart.ActivityOptions{Strict: cfg.Charts.StrictEmptySeries})
	pageController := controller.NewPageController(dashboardService, mounter)
	apiController := controller.NewAPIController(cfg, dashboardService)

	router.RegisterPages(engine, pageController)

	api := engine.Group(router.APIPrefix)
	api.Use(
		cors.New(cors.Config{
			AllowOrigins: cfg.API.AllowOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)
	{
		api.GET("/projects", apiController.GetProjects)
		api.GET("/activity", apiController.GetActivity)
		api.GET("/technologies", apiController.GetTechnologies)
		api.GET("/charts/technologies", apiController.GetTechnologiesChart)
		api.GET("/charts/activity", apiController.GetActivityChart)
		api.GET("/stats", apiController.GetStats)
		api.GET("/routes", apiController.GetRoutes)
		api.POST("/catalog/reload", apiController.ReloadCatalog)
	}

	return engine, nil
}

// Run serves handler until SIGINT or SIGTERM, then shuts down gracefully
func Run(cfg config.Config, handler http.Handler) error {
	server := &http.Server{
		Addr:              ":" + cfg.API.ListenPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening on port " + cfg.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			log.WithError(err).Error("error while starting server")
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Application stopped gracefully !")
	return nil
}
