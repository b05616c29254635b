package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weathermux/weathermux/internal/aggregator"
	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/server/handlers"
	"github.com/weathermux/weathermux/internal/server/middlewares"
	"github.com/weathermux/weathermux/pkg/telemetry"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	server *http.Server
	agg    *aggregator.Aggregator
	logger *zap.Logger
	tele   *telemetry.Telemetry
}

var (
	instance *Server
	once     sync.Once
)

func NewServer(logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	once.Do(func() {
		cfg := config.GetConfig()

		agg := aggregator.FromConfig(cfg, logger, tele)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()

		engine.Use(middlewares.RequestIDMiddleware(logger))
		engine.Use(middlewares.LoggingMiddleware(logger, time.RFC3339, true))
		engine.Use(middlewares.RecoveryMiddleware(logger, true))
		engine.Use(middlewares.TelemetryMiddleware(logger, tele))

		instance = &Server{
			engine: engine,
			agg:    agg,
			logger: logger,
			tele:   tele,
		}

		instance.setupRoutes()
	})

	return instance
}

func (s *Server) setupRoutes() {
	forecastHandler := handlers.NewForecastHandler(s.agg, s.logger)

	// Business endpoints
	s.engine.GET("/forecast", forecastHandler.ByCoordinate)
	s.engine.GET("/forecast/postcode", forecastHandler.ByPostcode)
	s.engine.GET("/forecast/city", forecastHandler.ByCityCountry)
	s.engine.GET("/providers", forecastHandler.Providers)

	// Health endpoints (Kubernetes friendly)
	healthHandler := handlers.NewHealthHandler(s.logger)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/health/live", healthHandler.Liveness)
	s.engine.GET("/health/ready", healthHandler.Readiness)
}

func (s *Server) Start() error {
	cfg := config.GetConfig()

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: s.engine,
	}

	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
