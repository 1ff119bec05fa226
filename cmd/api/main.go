package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "ralphbot-analytics/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "ralphbot-analytics/internal/analytics/adapters/postgres"
	"ralphbot-analytics/internal/analytics/adapters/synthetic"
	analyticsPorts "ralphbot-analytics/internal/analytics/core/ports"
	analyticsUsecase "ralphbot-analytics/internal/analytics/core/usecase"

	heartbeatHttp "ralphbot-analytics/internal/heartbeat/adapters/http/fiber"
	heartbeatRepoPg "ralphbot-analytics/internal/heartbeat/adapters/postgres"
	heartbeatPorts "ralphbot-analytics/internal/heartbeat/core/ports"
	heartbeatUsecase "ralphbot-analytics/internal/heartbeat/core/usecase"

	"ralphbot-analytics/internal/config"
	"ralphbot-analytics/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "ralphbot-analytics/docs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	log := logger.New("ralphbot-analytics", cfg.LogLevel)

	// The synthetic store is always constructed; it backs every query the
	// moment the real store is unreachable.
	fallback := synthetic.NewStore()

	var live analyticsPorts.DataSource
	var statusWriter heartbeatPorts.StatusWriterPort = fallback

	if cfg.PostgresDSN == "" {
		log.Warn("POSTGRES_DSN not set, starting on synthetic dataset")
	} else {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Warn("failed to open postgres, starting on synthetic dataset", "error", err)
		} else {
			db.SetMaxOpenConns(20)
			db.SetMaxIdleConns(10)
			db.SetConnMaxLifetime(30 * time.Minute)

			pingCtx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
			err = db.PingContext(pingCtx)
			cancel()

			if err != nil {
				log.Warn("postgres unreachable, starting on synthetic dataset", "error", err)
				db.Close()
			} else {
				defer db.Close()
				live = analyticsRepoPg.NewInteractionRepository(analyticsRepoPg.NewSQLDB(db))
				statusWriter = heartbeatRepoPg.NewStatusRepository(heartbeatRepoPg.NewSQLDB(db))
			}
		}
	}

	// Usecases
	dashboardUC := analyticsUsecase.NewDashboardUseCase(live, fallback, log)
	heartbeatUC := heartbeatUsecase.NewRecordHeartbeatUseCase(statusWriter)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "RalphBot analytics API is running",
			"available_endpoints": []string{
				"/status",
				"/heartbeat",
				"/interactions",
				"/metrics",
				"/daily_activity",
				"/top_queries",
				"/response_times",
			},
		})
	})

	// dashboard read endpoints
	dashboardHandler := analyticsHttp.NewDashboardHandler(dashboardUC)
	app.Get("/status", dashboardHandler.GetStatus)
	app.Get("/interactions", dashboardHandler.GetInteractions)
	app.Get("/metrics", dashboardHandler.GetMetrics)
	app.Get("/daily_activity", dashboardHandler.GetDailyActivity)
	app.Get("/top_queries", dashboardHandler.GetTopQueries)
	app.Get("/response_times", dashboardHandler.GetResponseTimes)

	// heartbeat ingestion
	heartbeatHandler := heartbeatHttp.NewHeartbeatHandler(heartbeatUC)
	app.Post("/heartbeat", heartbeatHandler.RecordHeartbeat)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", "error", err)
		}
	}()

	log.Info("server started", "addr", cfg.HTTPAddr, "using_fallback", dashboardUC.UsingFallback())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", "error", err)
	}

	log.Info("server exiting")
}
