package router

import (
	"github.com/devfolio/dashboard/view"
	"github.com/gin-gonic/gin"
)

// Pages renders views. Unknown paths go to NotFound.
type Pages interface {
	Render(name view.Name) gin.HandlerFunc
	NotFound(ctx *gin.Context)
}

// RegisterPages binds every route of the navigation table on engine
func RegisterPages(engine *gin.Engine, pages Pages) {
	for _, r := range routes {
		engine.GET(r.Path, pages.Render(r.View))
	}

	engine.NoRoute(pages.NotFound)
}
