package view

import (
	"sync"
	"sync/atomic"

	"github.com/devfolio/dashboard/chart"
	"github.com/devfolio/dashboard/model"
	log "github.com/sirupsen/logrus"
)

// Aggregates is what a view instance binds to its charts
type Aggregates struct {
	Version uint64
	Tally   model.TechnologyTally
	Series  model.ActivitySeries
}

// Clone copies the tally and the series so the copy can be changed freely
func (a Aggregates) Clone() Aggregates {
	return Aggregates{
		Version: a.Version,
		Tally:   a.Tally.Clone(),
		Series:  a.Series.Clone(),
	}
}

// ChartHandle is a chart bound to one mount point. It lives as long as the
// view instance that created it.
type ChartHandle struct {
	Target string
	Config chart.Config
}

// Mounter creates view instances and keeps count of the chart handles still
// open
type Mounter struct {
	activity chart.ActivityOptions
	live     atomic.Int64
}

func NewMounter(activity chart.ActivityOptions) *Mounter {
	return &Mounter{activity: activity}
}

// Live returns the number of chart handles not yet released
func (m *Mounter) Live() int64 {
	return m.live.Load()
}

// Mount instantiates def with charts for the requested targets. Targets the
// view does not carry are skipped. An error is returned only when a chart
// cannot be built (strict empty series); no handle is left open then.
func (m *Mounter) Mount(def Definition, agg Aggregates, targets ...string) (*Instance, error) {
	inst := &Instance{
		Definition: def,
		Aggregates: agg,
		charts:     make(map[string]*ChartHandle, len(targets)),
		mounter:    m,
	}

	for _, target := range targets {
		if !def.HasTarget(target) {
			log.WithFields(log.Fields{
				"view":   def.Name,
				"target": target,
			}).Debug("render target missing from view, chart skipped")
			continue
		}

		cfg, err := m.build(target, agg)
		if err != nil {
			inst.Close()
			return nil, err
		}

		if cfg == nil {
			continue
		}

		inst.charts[target] = &ChartHandle{Target: target, Config: *cfg}
		m.live.Add(1)
	}

	return inst, nil
}

func (m *Mounter) build(target string, agg Aggregates) (*chart.Config, error) {
	switch target {
	case chart.TechnologiesTarget:
		cfg := chart.Technologies(agg.Tally)
		return &cfg, nil
	case chart.ActivityTarget:
		cfg, err := chart.Activity(agg.Series, m.activity)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	log.WithField("target", target).Debug("no chart registered for target")
	return nil, nil
}

// Instance is a mounted view. Close releases its chart handles.
type Instance struct {
	Definition Definition
	Aggregates Aggregates

	charts  map[string]*ChartHandle
	mounter *Mounter
	once    sync.Once
}

// Chart returns the handle mounted on target, if any
func (i *Instance) Chart(target string) (*ChartHandle, bool) {
	handle, found := i.charts[target]
	return handle, found
}

// Charts returns the chart configs keyed by mount point
func (i *Instance) Charts() map[string]chart.Config {
	configs := make(map[string]chart.Config, len(i.charts))
	for target, handle := range i.charts {
		configs[target] = handle.Config
	}
	return configs
}

// Close destroys the chart handles. Calling it again is a no-op.
func (i *Instance) Close() {
	i.once.Do(func() {
		i.mounter.live.Add(-int64(len(i.charts)))
		i.charts = map[string]*ChartHandle{}
	})
}
