// Package chart builds Chart.js configurations from aggregates.
package chart

import (
	"github.com/devfolio/dashboard/model"
	log "github.com/sirupsen/logrus"
)

const (
	TypeDoughnut = "doughnut"
	TypeLine     = "line"

	// mount point ids shared with the templates
	TechnologiesTarget = "techChart"
	ActivityTarget     = "activityChart"
)

// Palette is cycled over the doughnut slices
var Palette = []string{
	"rgba(79, 70, 229, 0.8)",
	"rgba(168, 85, 247, 0.8)",
	"rgba(236, 72, 153, 0.8)",
	"rgba(52, 211, 153, 0.8)",
	"rgba(251, 146, 60, 0.8)",
	"rgba(99, 102, 241, 0.8)",
}

type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string  `json:"label,omitempty"`
	Data            []int   `json:"data"`
	BackgroundColor any     `json:"backgroundColor,omitempty"` // string or []string
	BorderColor     string  `json:"borderColor,omitempty"`
	Fill            bool    `json:"fill,omitempty"`
	Tension         float64 `json:"tension,omitempty"`
}

type Options struct {
	Responsive bool             `json:"responsive"`
	Cutout     string           `json:"cutout,omitempty"`
	Plugins    Plugins          `json:"plugins"`
	Scales     map[string]Scale `json:"scales,omitempty"`
}

type Plugins struct {
	Legend     Legend            `json:"legend"`
	Annotation *AnnotationPlugin `json:"annotation,omitempty"`
}

type Legend struct {
	Display  bool          `json:"display"`
	Position string        `json:"position,omitempty"`
	Labels   *LegendLabels `json:"labels,omitempty"`
}

type LegendLabels struct {
	Font    Font `json:"font"`
	Padding int  `json:"padding"`
}

type Font struct {
	Size   int    `json:"size"`
	Family string `json:"family"`
}

type Scale struct {
	BeginAtZero bool `json:"beginAtZero,omitempty"`
	Grid        Grid `json:"grid"`
}

type Grid struct {
	Display bool   `json:"display"`
	Color   string `json:"color,omitempty"`
}

type AnnotationPlugin struct {
	Annotations map[string]Annotation `json:"annotations"`
}

type Annotation struct {
	Type        string          `json:"type"`
	YMin        int             `json:"yMin"`
	YMax        int             `json:"yMax"`
	BorderColor string          `json:"borderColor"`
	BorderWidth int             `json:"borderWidth"`
	BorderDash  []int           `json:"borderDash,omitempty"`
	Label       AnnotationLabel `json:"label"`
}

type AnnotationLabel struct {
	Display  bool   `json:"display"`
	Content  string `json:"content"`
	Position string `json:"position"`
}

// ActivityOptions tunes the activity chart
type ActivityOptions struct {
	// Strict fails on an empty series instead of dropping the maximum line
	Strict bool
}

// Technologies builds the doughnut chart of technology usage
func Technologies(tally model.TechnologyTally) Config {
	colors := make([]string, tally.Len())
	for i := range colors {
		colors[i] = Palette[i%len(Palette)]
	}

	return Config{
		Type: TypeDoughnut,
		Data: Data{
			Labels: tally.Names(),
			Datasets: []Dataset{
				{
					Data:            tally.Counts(),
					BackgroundColor: colors,
				},
			},
		},
		Options: Options{
			Responsive: true,
			Cutout:     "70%",
			Plugins: Plugins{
				Legend: Legend{
					Display:  true,
					Position: "bottom",
					Labels: &LegendLabels{
						Font:    Font{Size: 12, Family: "'Inter', sans-serif"},
						Padding: 20,
					},
				},
			},
		},
	}
}

// Activity builds the commit activity line chart with a dashed line at the
// series maximum
func Activity(series model.ActivitySeries, opts ActivityOptions) (Config, error) {
	cfg := Config{
		Type: TypeLine,
		Data: Data{
			Labels: series.Labels,
			Datasets: []Dataset{
				{
					Label:           "Commits",
					Data:            series.Commits,
					BorderColor:     "rgba(79, 70, 229, 1)",
					BackgroundColor: "rgba(79, 70, 229, 0.1)",
					Fill:            true,
					Tension:         0.4,
				},
			},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Legend: Legend{Display: false},
			},
			Scales: map[string]Scale{
				"y": {BeginAtZero: true, Grid: Grid{Display: true, Color: "rgba(0, 0, 0, 0.1)"}},
				"x": {Grid: Grid{Display: false}},
			},
		},
	}

	highest, err := series.MustMax()
	if err != nil {
		if opts.Strict {
			return Config{}, err
		}

		log.WithError(err).Warn("activity chart rendered without maximum line")
		return cfg, nil
	}

	cfg.Options.Plugins.Annotation = &AnnotationPlugin{
		Annotations: map[string]Annotation{
			"maxLine": {
				Type:        "line",
				YMin:        highest,
				YMax:        highest,
				BorderColor: "rgba(236, 72, 153, 0.5)",
				BorderWidth: 2,
				BorderDash:  []int{6, 6},
				Label: AnnotationLabel{
					Display:  true,
					Content:  "Maximum",
					Position: "end",
				},
			},
		},
	}

	return cfg, nil
}
