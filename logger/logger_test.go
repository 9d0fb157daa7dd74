package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/dashboard/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{input: "error", expected: logrus.ErrorLevel},
		{input: "WARN", expected: logrus.WarnLevel},
		{input: "warning", expected: logrus.WarnLevel},
		{input: "Info", expected: logrus.InfoLevel},
		{input: " debug ", expected: logrus.DebugLevel},
		{input: "verbose", expected: logrus.ErrorLevel},
		{input: "", expected: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Level(tt.input))
		})
	}
}

func TestSetup(t *testing.T) {
	defer logrus.SetFormatter(&logrus.TextFormatter{})
	defer logrus.SetLevel(logrus.InfoLevel)

	previous := logrus.StandardLogger().Out
	defer logrus.SetOutput(previous)

	var buf bytes.Buffer
	cfg := config.GetDefault()
	cfg.Logs.Level = "warn"
	cfg.Logs.OutputLogsAsJSON = true
	SetupWriter(*cfg, &buf)

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	Component("catalog").Warn("replaced")
	assert.Contains(t, buf.String(), `"component":"catalog"`)
}

func TestGinMiddleware(t *testing.T) {
	var buf bytes.Buffer
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetOutput(previous)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	assert.Contains(t, out, "request served")
	assert.Contains(t, out, "request rejected")
	assert.Contains(t, out, "path=/missing")
	assert.Contains(t, out, "component=http")
}
