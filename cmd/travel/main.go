package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"travelbuddy/cfg"
	"travelbuddy/internal/catalog"
	"travelbuddy/internal/destination"
	"travelbuddy/internal/planner"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/cache"
	"travelbuddy/pkg/flash"
	"travelbuddy/pkg/idgen"
	"travelbuddy/pkg/logger"
	"travelbuddy/pkg/ratelimit"
	"travelbuddy/pkg/telemetry"
	"travelbuddy/pkg/travelapi"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(ctx, &config.Observability, zlogger)
	if err != nil {
		zlogger.Warn("continuing without tracing/metrics", logger.Field{Key: "err", Value: err})
		shutdownOtel = func(context.Context) error { return nil }
	}

	// ============
	// Cache
	// ============
	store := newCache(ctx, config, zlogger)

	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}
	flashes := flash.NewStore(store, ids, config.Flash.TTLMinutes, zlogger)

	// ============
	// External Service
	// ============
	// nil selects http.DefaultClient, which sets no timeout of its own
	travelClient := travelapi.NewClient(nil, config.TravelAPI.BaseURL, zlogger)
	zlogger.Info("travel api configured", logger.Field{Key: "base_url", Value: travelClient.BaseURL()})

	// ============
	// Inernal Service
	// ============
	planLimiter := ratelimit.New(config.RateLimit.PlanPerMinute, config.RateLimit.PlanBurst, 10*time.Minute)

	catalogHandler := catalog.NewHandler(travelClient, flashes, zlogger)
	destinationHandler := destination.NewHandler(travelClient, flashes, zlogger)
	plannerHandler := planner.NewHandler(travelClient, flashes, planLimiter, zlogger)

	// ============
	// HTTP
	// ============
	r := web.NewEngine(
		gin.Recovery(),
		otelgin.Middleware(config.Observability.ServiceName),
		telemetry.RequestID(),
		telemetry.TraceLoggerMiddleware(zlogger),
		flashes.Middleware(),
	)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler.RegisterRoutes(r)
	destinationHandler.RegisterRoutes(r)
	plannerHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + config.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlogger.Info("server starting", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "err", Value: err})
	}
	if err := shutdownOtel(shutdownCtx); err != nil {
		zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
	}
}

// newCache prefers Redis and falls back to process memory when Redis is not
// configured or not reachable at startup.
func newCache(ctx context.Context, config *cfg.Config, zlogger logger.Logger) cache.Cache {
	if !config.Redis.Enabled() {
		zlogger.Info("redis not configured, flash notices kept in memory")
		return cache.NewMemoryCache()
	}

	redis := cache.NewRedisCache(config.Redis.Addr(), config.Redis.Password)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx, redis); err != nil {
		zlogger.Warn("redis unreachable, flash notices kept in memory",
			logger.Field{Key: "addr", Value: config.Redis.Addr()},
			logger.Field{Key: "err", Value: err},
		)
		return cache.NewMemoryCache()
	}
	return redis
}
