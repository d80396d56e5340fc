package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxdeals/internal/adapters/cache"
	"fxdeals/internal/adapters/postgres"
	"fxdeals/internal/api"
	"fxdeals/internal/config"
	"fxdeals/internal/deal"
	"fxdeals/internal/deal/handler"
	"fxdeals/internal/platform/db"
	httpserver "fxdeals/internal/platform/http"

	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (migrations, DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	knownDeals, err := cache.NewKnownDealCache(appCfg.Cache.MaxItems)
	if err != nil {
		return err
	}
	defer knownDeals.Close()

	// Repositories
	dealRepo := postgres.NewDealRepository(pool)

	// Services
	currencyValidator := deal.NewCurrencyValidator(deal.SupportedCurrencies())
	dealService := deal.NewService(deal.NewFieldValidator(), currencyValidator, dealRepo, knownDeals)
	scheduler := deal.NewScheduler(
		dealRepo,
		knownDeals,
		time.Duration(appCfg.Scheduler.WarmUpJobDurationSec)*time.Second,
		appCfg.Scheduler.WarmUpBatchLimit,
	)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	rateLimiter, err := newRateLimiter(appCfg.RateLimit)
	if err != nil {
		return err
	}

	// Handlers and router
	dealHandler := handler.NewDealHandler(dealService, currencyValidator)
	router := api.NewRouter(dealHandler, rateLimiter)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newRateLimiter(cfg config.RateLimit) (*limiter.Limiter, error) {
	if cfg.Rate == "" {
		logrus.Warn("Rate limiting is disabled")
		return nil, nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.Rate, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}
