package cmd

import (
	"context"
	"time"

	"github.com/devfolio/dashboard/catalog"
	"github.com/devfolio/dashboard/config"
	"github.com/devfolio/dashboard/server"
	"github.com/devfolio/dashboard/service"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard views and the JSON api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := NewSource(ctx, *cfg)
	if err != nil {
		return err
	}

	dashboardService := service.NewDashboardService(catalog.NewStore(catalog.Snapshot{}), source)
	if _, err := dashboardService.Reload(ctx); err != nil {
		log.WithError(err).Error("unable to load the catalog")
		return err
	}

	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := server.NewEngine(*cfg, dashboardService)
	if err != nil {
		return err
	}

	return server.Run(*cfg, engine)
}

// NewSource builds the catalog source selected by the configuration
func NewSource(ctx context.Context, cfg config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.FileSource{Path: cfg.Catalog.Path}, nil
	case config.SourceGithub:
		return newGithubSource(ctx, cfg)
	default:
		return catalog.StaticSource{}, nil
	}
}

func newGithubSource(ctx context.Context, cfg config.Config) (catalog.Source, error) {
	githubClient := github.NewClient(nil)

	if cfg.Github.Token != "" {
		log.Debug("will setup github client with authorization token")
		githubClient = githubClient.WithAuthToken(cfg.Github.Token)
	}

	// execute first request to github to fetch current rate limits
	log.Debug("loading current rate limit from github")
	rateLimits, _, err := githubClient.RateLimit.Get(ctx)
	if err != nil {
		log.WithError(err).Error("unable to load current github rate limits")
		return nil, err
	}

	log.WithFields(log.Fields{
		"totalAvailable":    rateLimits.Core.Limit,
		"remainingRequests": rateLimits.Core.Remaining,
	}).Debug("will setup local rate limiter with rate limits infos from github")

	// consume the requests already spent elsewhere so the local limiter
	// matches what github will accept
	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(max(rateLimits.Core.Limit, 1))), rateLimits.Core.Limit)
	rateLimiter.AllowN(time.Now(), rateLimits.Core.Limit-rateLimits.Core.Remaining)

	return service.NewGithubService(cfg, githubClient, rateLimiter), nil
}
