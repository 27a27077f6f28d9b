package telemetry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"travelbuddy/cfg"
	"travelbuddy/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, inbound, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestTraceLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	base := logger.NewWithWriter("development", buf)

	r := gin.New()
	r.Use(RequestID(), TraceLoggerMiddleware(base))
	r.GET("/destinations", func(c *gin.Context) {
		Logger(c, logger.Nop{}).Warn("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	req.Header.Set(RequestIDHeader, "6f1c1f1e-3b5c-4a53-9b8a-4c9c3a3e9a11")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"6f1c1f1e-3b5c-4a53-9b8a-4c9c3a3e9a11"`)
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, `"status":204`)
}

func TestLoggerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	fallback := logger.Nop{}
	assert.Equal(t, logger.Logger(fallback), Logger(c, fallback))
}

func TestInit_DisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), &cfg.ObservabilityConfig{}, logger.Nop{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_WithEndpointOwnsConnection(t *testing.T) {
	t.Cleanup(func() {
		otel.SetTracerProvider(tracenoop.NewTracerProvider())
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
	})

	shutdown, err := Init(context.Background(), &cfg.ObservabilityConfig{
		OTLPEndpoint: "127.0.0.1:4317",
		ServiceName:  "travelbuddy-web",
		Environment:  "test",
	}, logger.Nop{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// nothing listens on the endpoint, so only returning matters here
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}
