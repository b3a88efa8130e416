package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/adityaraghav/studyspace-backend/api/controllers"
	"github.com/adityaraghav/studyspace-backend/api/routes"
	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/internal/media"
	"github.com/adityaraghav/studyspace-backend/internal/members"
	"github.com/adityaraghav/studyspace-backend/internal/reference"
	"github.com/adityaraghav/studyspace-backend/internal/renewals"
	"github.com/adityaraghav/studyspace-backend/internal/seating"
	"github.com/adityaraghav/studyspace-backend/pkg/config"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/metrics"
	"github.com/adityaraghav/studyspace-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gatewayClient, err := gateway.New(cfg.Gateway, logg, metrics.NewGatewayMetrics(registry))
	if err != nil {
		logg.Error(context.Background(), "failed to build gateway client", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, reference caching disabled")
	}

	var referenceService reference.Service
	if redisClient != nil {
		referenceService, err = reference.NewService(gatewayClient, redisClient, cfg.Cache.ReferenceTTL, logg)
	} else {
		referenceService, err = reference.NewService(gatewayClient, nil, cfg.Cache.ReferenceTTL, logg)
	}
	if err != nil {
		logg.Error(context.Background(), "failed to create reference service", err)
		os.Exit(1)
	}

	memberService, err := members.NewService(gatewayClient, referenceService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create member service", err)
		os.Exit(1)
	}

	renewalService, err := renewals.NewService(gatewayClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create renewal service", err)
		os.Exit(1)
	}

	seatingResolver, err := seating.NewResolver(gatewayClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create seating resolver", err)
		os.Exit(1)
	}

	mediaService, err := media.NewService(gatewayClient, logg, cfg.Uploads.MaxBytes)
	if err != nil {
		logg.Error(context.Background(), "failed to create media service", err)
		os.Exit(1)
	}

	deps := routes.Dependencies{
		Config:        cfg,
		Logger:        logg,
		Registry:      registry,
		GatewayPinger: gatewayClient,
		Members:       memberService,
		Renewals:      renewalService,
		Reference:     referenceService,
		Seating:       seatingResolver,
		Media:         mediaService,
	}
	if redisClient != nil {
		deps.RedisPinger = controllers.Pinger(redisClient)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
