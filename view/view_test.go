package view

import (
	"testing"

	"github.com/devfolio/dashboard/aggregate"
	"github.com/devfolio/dashboard/catalog"
	"github.com/devfolio/dashboard/chart"
	"github.com/devfolio/dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregates() Aggregates {
	return Aggregates{
		Version: 1,
		Tally:   aggregate.TallyTechnologies(catalog.SampleProjects()),
		Series:  aggregate.BuildActivitySeries(catalog.SampleActivity()),
	}
}

func TestEveryViewIsDefined(t *testing.T) {
	for _, name := range []Name{Dashboard, Analytics, Projects, Tasks, Profile, Animations} {
		def, found := Lookup(name)
		require.True(t, found, name)
		assert.Equal(t, name, def.Name)
		assert.NotEmpty(t, def.Template)
	}

	_, found := Lookup("Settings")
	assert.False(t, found)
}

func TestMountAndClose(t *testing.T) {
	mounter := NewMounter(chart.ActivityOptions{})
	def, _ := Lookup(Analytics)

	inst, err := mounter.Mount(def, sampleAggregates(), chart.TechnologiesTarget, chart.ActivityTarget)
	require.NoError(t, err)
	assert.Equal(t, int64(2), mounter.Live())

	tech, found := inst.Chart(chart.TechnologiesTarget)
	require.True(t, found)
	assert.Equal(t, chart.TypeDoughnut, tech.Config.Type)
	assert.Len(t, inst.Charts(), 2)

	inst.Close()
	inst.Close()
	assert.Equal(t, int64(0), mounter.Live())
	assert.Empty(t, inst.Charts())
}

func TestMountSkipsMissingTargets(t *testing.T) {
	mounter := NewMounter(chart.ActivityOptions{})
	def, _ := Lookup(Tasks)

	inst, err := mounter.Mount(def, sampleAggregates(), chart.TechnologiesTarget, chart.ActivityTarget)
	require.NoError(t, err)
	defer inst.Close()

	assert.Empty(t, inst.Charts())
	assert.Equal(t, int64(0), mounter.Live())
}

func TestMountStrictEmptySeries(t *testing.T) {
	mounter := NewMounter(chart.ActivityOptions{Strict: true})
	def, _ := Lookup(Analytics)

	agg := sampleAggregates()
	agg.Series = aggregate.BuildActivitySeries(nil)

	_, err := mounter.Mount(def, agg, chart.TechnologiesTarget, chart.ActivityTarget)
	var emptyInput *model.EmptyInputError
	assert.ErrorAs(t, err, &emptyInput)
	assert.Equal(t, int64(0), mounter.Live())
}

func TestMountLenientEmptySeries(t *testing.T) {
	mounter := NewMounter(chart.ActivityOptions{})
	def, _ := Lookup(Dashboard)

	agg := sampleAggregates()
	agg.Series = aggregate.BuildActivitySeries(nil)

	inst, err := mounter.Mount(def, agg, chart.ActivityTarget)
	require.NoError(t, err)
	defer inst.Close()

	activity, found := inst.Chart(chart.ActivityTarget)
	require.True(t, found)
	assert.Nil(t, activity.Config.Options.Plugins.Annotation)
}

func TestShowcaseStartsWithProjectEntrance(t *testing.T) {
	showcase := Showcase()

	require.NotEmpty(t, showcase)
	assert.Equal(t, ".project-card", showcase[0].Selector)
	assert.Equal(t, 0.6, showcase[0].Duration)
	assert.Equal(t, 0.2, showcase[0].Stagger)
	assert.Equal(t, "power2.out", showcase[0].Ease)

	names := make(map[string]struct{})
	for _, a := range showcase {
		names[a.Name] = struct{}{}
	}
	assert.Len(t, names, len(showcase))
}
