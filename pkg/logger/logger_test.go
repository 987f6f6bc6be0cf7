package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/swimdesk/swimdesk-api/pkg/config"
	"github.com/swimdesk/swimdesk-api/pkg/middleware/requestid"
)

func TestNewBuildsFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"production json", config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}}},
		{"development console", config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug", Format: "console"}}},
		{"bad level falls back", config.Config{Log: config.LogConfig{Level: "shouting"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestGinMiddlewareLogsRequestFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(requestid.Middleware())
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/students", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/students?page=2", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "http_request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/students", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "page=2", fields["query"])
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Contains(t, fields, "latency")
	assert.Contains(t, fields, "ip")
}

func TestGinMiddlewareOmitsEmptyFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "query")
	assert.NotContains(t, fields, "request_id")
}
