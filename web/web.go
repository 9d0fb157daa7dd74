// Package web embeds the page templates and the static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with the shared layout
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"lower": strings.ToLower,
		"statusLabel": func(status string) string {
			return strings.ReplaceAll(status, "_", " ")
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the assets served under /static
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
