package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traveling-message/config"
	"traveling-message/internal/adapter/factsource/blockstream"
	"traveling-message/internal/adapter/factsource/nominatim"
	"traveling-message/internal/adapter/http/handler"
	"traveling-message/internal/adapter/storage/memory"
	"traveling-message/internal/adapter/storage/postgres"
	redisstore "traveling-message/internal/adapter/storage/redis"
	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"
	"traveling-message/internal/metrics"
	"traveling-message/internal/service"
	"traveling-message/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	entryRepo := postgres.NewEntryRepo(pool)
	projectRepo := postgres.NewProjectRepo(pool)

	project := domain.Project{
		BTCAddress:  cfg.Project.BTCAddress,
		OriginLabel: cfg.Project.OriginLabel,
	}
	if err := projectRepo.Seed(ctx, project); err != nil {
		log.Fatal().Err(err).Msg("failed to seed project metadata")
	}

	healthCheckers := []ports.HealthChecker{postgres.NewHealthCheck(pool)}

	var counter ports.AttemptCounter
	switch cfg.RateLimit.Backend {
	case "redis":
		client, err := redisstore.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		counter = redisstore.NewAttemptCounter(client)
		healthCheckers = append(healthCheckers, redisstore.NewHealthCheck(client))
	default:
		counter = memory.NewAttemptCounter()
	}

	explorer := blockstream.New(cfg.Explorer, log)
	geocoder := nominatim.New(cfg.Geocoder, log)
	m := metrics.New(prometheus.DefaultRegisterer)

	reportingSvc := service.NewReportingService(entryRepo, projectRepo, explorer, log)
	exportSvc := service.NewExportService(reportingSvc, cfg.Export.Path, log)
	submissionSvc := service.NewSubmissionService(
		entryRepo, explorer, geocoder, exportSvc, project, m, log,
	)

	// Bring the artifact up to date with whatever the ledger already holds.
	if err := exportSvc.Export(ctx); err != nil {
		log.Warn().Err(err).Msg("initial export failed")
	}

	router := handler.SetupRouter(handler.RouterDeps{
		SubmissionSvc:  submissionSvc,
		ReportingSvc:   reportingSvc,
		Counter:        counter,
		RateLimit:      cfg.RateLimit.Limit,
		RateWindow:     cfg.RateLimit.Window,
		HealthCheckers: healthCheckers,
		SiteDir:        cfg.Site.Dir,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
