package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/dashboard/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPages struct{}

func (stubPages) Render(name view.Name) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, string(name))
	}
}

func (stubPages) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
}

func TestRegisterPages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterPages(engine, stubPages{})

	for _, r := range Routes() {
		t.Run(r.Path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, r.Path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(r.View), w.Body.String())
		})
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", w.Body.String())
}
