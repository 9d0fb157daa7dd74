package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/devfolio/dashboard/aggregate"
	"github.com/devfolio/dashboard/catalog"
	"github.com/devfolio/dashboard/logger"
	"github.com/devfolio/dashboard/model"
	"github.com/devfolio/dashboard/view"
	log "github.com/sirupsen/logrus"
)

type DashboardService interface {
	Snapshot() catalog.Snapshot
	Aggregates() view.Aggregates
	Current() (catalog.Snapshot, view.Aggregates)
	Projects(query model.ProjectQuery) []model.Project
	Stats() model.PortfolioStats

	Reload(ctx context.Context) (catalog.Snapshot, error)
	SourceName() string
}

type dashboardService struct {
	store  *catalog.Store
	source catalog.Source

	mu     sync.RWMutex
	cached view.Aggregates
}

// NewDashboardService derives the aggregates every time the store replaces
// its snapshot. Reads also check the store version, so a caller never gets
// aggregates older than the snapshot the store currently holds.
func NewDashboardService(store *catalog.Store, source catalog.Source) DashboardService {
	s := &dashboardService{
		store:  store,
		source: source,
	}

	store.Subscribe(s.onCatalogChange)
	return s
}

func derive(snapshot catalog.Snapshot) view.Aggregates {
	return view.Aggregates{
		Version: snapshot.Version,
		Tally:   aggregate.TallyTechnologies(snapshot.Projects),
		Series:  aggregate.BuildActivitySeries(snapshot.Activity),
	}
}

func (s *dashboardService) onCatalogChange(snapshot catalog.Snapshot) {
	s.remember(derive(snapshot))
}

func (s *dashboardService) remember(agg view.Aggregates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if agg.Version < s.cached.Version {
		return
	}
	s.cached = agg

	logger.Component("dashboard").WithFields(log.Fields{
		"version":      agg.Version,
		"technologies": agg.Tally.Len(),
		"periods":      agg.Series.Len(),
	}).Debug("aggregates recomputed")
}

func (s *dashboardService) Snapshot() catalog.Snapshot {
	return s.store.Snapshot()
}

func (s *dashboardService) Aggregates() view.Aggregates {
	_, agg := s.Current()
	return agg
}

// Current reads the store once and returns that snapshot with the aggregates
// of the same version. The aggregates are a copy the caller may change.
func (s *dashboardService) Current() (catalog.Snapshot, view.Aggregates) {
	snapshot := s.store.Snapshot()

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached.Version == snapshot.Version {
		return snapshot, cached.Clone()
	}

	agg := derive(snapshot)
	s.remember(agg)
	return snapshot, agg.Clone()
}

func (s *dashboardService) Projects(query model.ProjectQuery) []model.Project {
	return query.Apply(s.store.Snapshot().Projects)
}

func (s *dashboardService) Stats() model.PortfolioStats {
	return aggregate.Stats(s.store.Snapshot().Projects)
}

// Reload fetches the catalog from the source again. The current snapshot is
// kept when the source fails.
func (s *dashboardService) Reload(ctx context.Context) (catalog.Snapshot, error) {
	logger.Component("dashboard").WithField("source", s.source.Name()).Info("loading catalog")

	snapshot, err := s.source.Load(ctx)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}

	return s.store.Replace(snapshot)
}

func (s *dashboardService) SourceName() string {
	return s.source.Name()
}
