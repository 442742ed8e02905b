package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/courtplan/config"
	_ "github.com/DhavalSuthar-24/courtplan/docs"
	"github.com/DhavalSuthar-24/courtplan/internal/health"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/observability"
	"github.com/DhavalSuthar-24/courtplan/internal/observability/logging"
	"github.com/DhavalSuthar-24/courtplan/internal/observability/metrics"
	"github.com/DhavalSuthar-24/courtplan/internal/referee"
	"github.com/DhavalSuthar-24/courtplan/internal/schedule"
	"github.com/DhavalSuthar-24/courtplan/internal/timeslot"
	"github.com/DhavalSuthar-24/courtplan/routes"
	"gorm.io/gorm"
)

// Version is set via ldflags at build time
var Version = "dev"

// @title CourtPlan Scheduling API
// @version 1.0
// @description Time slot, referee and match scheduling for tournaments.
// @host localhost:8088
// @BasePath /api
func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.App.Env, cfg.App.LogLevel, cfg.Telemetry.ServiceName))

	shutdownMetrics, err := observability.InitMetrics(ctx, cfg.Telemetry.ServiceName, Version, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialize metrics", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			slog.Warn("metrics shutdown error", slog.String("error", err.Error()))
		}
	}()

	schedulingMetrics, err := metrics.NewSchedulingMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduling metrics", slog.String("error", err.Error()))
		return 1
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close database", slog.String("error", err.Error()))
			}
		}()
	}

	if err := migrate(db); err != nil {
		slog.Error("migration failed", slog.String("error", err.Error()))
		return 1
	}
	slog.Info("migration successful")

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		slog.Error("failed to connect redis", slog.String("error", err.Error()))
		return 1
	}

	var summaryCache timeslot.SummaryCache = timeslot.NoopSummaryCache{}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
		summaryCache = timeslot.NewRedisSummaryCache(redisClient, cfg.Redis.CacheTTL)
	} else {
		slog.Info("REDIS_ADDR not set, schedule summary cache disabled")
	}

	matchRepo := match.NewGormMatchRepository(db)
	slotRepo := timeslot.NewGormTimeSlotRepository(db)
	refereeRepo := referee.NewGormRefereeRepository(db)

	slotService := timeslot.NewTimeSlotService(slotRepo, summaryCache, schedulingMetrics, cfg.App.BulkPreviewSize)
	refereeService := referee.NewRefereeService(refereeRepo, matchRepo, schedulingMetrics)
	optimizer := schedule.NewPendingOptimizer(matchRepo, slotService, refereeService)

	router := routes.SetupRoutes(routes.Dependencies{
		TimeSlots: timeslot.NewTimeSlotController(slotService),
		Referees:  referee.NewRefereeController(refereeService, cfg.App.DefaultPageSize),
		Matches:   match.NewMatchController(matchRepo, summaryCache),
		Optimizer: schedule.NewOptimizerController(optimizer),
		Health:    health.NewChecker(db, redisClient, Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			slog.String("port", cfg.App.Port),
			slog.String("env", cfg.App.Env),
			slog.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		slog.Error("server error", slog.String("error", err.Error()))
		return 1
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("server exited properly")
	return 0
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&match.Match{}); err != nil {
		return err
	}
	if err := timeslot.Migrate(db); err != nil {
		return err
	}
	return referee.Migrate(db)
}
