package router

import (
	"strings"

	"github.com/devfolio/dashboard/view"
)

const (
	Root       = "/"
	Analytics  = "/analytics"
	Projects   = "/projects"
	Tasks      = "/tasks"
	Profile    = "/profile"
	Animations = "/animations"
)

const (
	StaticPrefix = "/static"
	APIPrefix    = "/api"
)

type Route struct {
	Path string    `json:"path"`
	View view.Name `json:"view"`
}

var routes = []Route{
	{Path: Root, View: view.Dashboard},
	{Path: Analytics, View: view.Analytics},
	{Path: Projects, View: view.Projects},
	{Path: Tasks, View: view.Tasks},
	{Path: Profile, View: view.Profile},
	{Path: Animations, View: view.Animations},
}

// Routes returns the navigation table, default route first
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup resolves a request path. A single trailing slash is ignored.
func Lookup(path string) (Route, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}

	return Route{}, false
}
