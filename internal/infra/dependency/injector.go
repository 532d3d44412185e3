// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsboard/backend/config"
	"github.com/opsboard/backend/internal/application/usecase/calls"
	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/application/usecase/reference"
	"github.com/opsboard/backend/internal/application/usecase/report"
	"github.com/opsboard/backend/internal/application/usecase/snapshot"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/infra/server/router"
	"github.com/opsboard/backend/internal/integration/adapters"
	"github.com/opsboard/backend/internal/integration/entrypoint/controller"
	"github.com/opsboard/backend/internal/integration/entrypoint/middleware"
	"github.com/opsboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	Router  *router.Router
	Refresh *snapshot.RefreshUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) *Injector {
	// Upstream client and stores
	upstream := adapters.NewUpstreamClient(cfg.Upstream.BaseURL, cfg.Upstream.APIToken, cfg.Upstream.Timeout)
	snapshotStore := persistence.NewSnapshotStore()

	// Currency registry and formatter
	registry := currency.NewRegistry()
	formatter := currency.NewFormatter(registry)

	// Summary cache (optional)
	var summaryCache ledger.SummaryCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("Redis unreachable, summaries will be recomputed per request", "error", err)
		}
		summaryCache = adapters.NewRedisSummaryCache(client, cfg.Redis.CacheTTL)
	}

	// Create use cases
	refreshUseCase := snapshot.NewRefreshUseCase(upstream, snapshotStore, registry)
	getSummaryUseCase := ledger.NewGetSummaryUseCase(snapshotStore, summaryCache, formatter)
	listMovementsUseCase := ledger.NewListMovementsUseCase(snapshotStore)
	getDailyReportUseCase := report.NewGetDailyReportUseCase(upstream, formatter)
	getPeriodReportUseCase := report.NewGetPeriodReportUseCase(upstream, formatter)
	getOverviewUseCase := calls.NewGetOverviewUseCase(upstream)
	listReferenceUseCase := reference.NewListReferenceUseCase(upstream)
	listWalletsUseCase := reference.NewListWalletsUseCase(upstream)
	listCategoriesUseCase := reference.NewListCategoriesUseCase(upstream)
	listCurrenciesUseCase := reference.NewListCurrenciesUseCase(upstream)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return upstream.Ping(ctx) == nil
	}, snapshotStore)
	summaryController := controller.NewSummaryController(getSummaryUseCase)
	movementsController := controller.NewMovementsController(listMovementsUseCase)
	reportController := controller.NewReportController(getDailyReportUseCase, getPeriodReportUseCase)
	callsController := controller.NewCallsController(getOverviewUseCase)
	referenceController := controller.NewReferenceController(
		listReferenceUseCase,
		listWalletsUseCase,
		listCategoriesUseCase,
		listCurrenciesUseCase,
	)
	snapshotController := controller.NewSnapshotController(refreshUseCase)

	// Create middleware
	refreshRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.WindowDuration,
	)

	return &Injector{
		Config:  cfg,
		Refresh: refreshUseCase,
		Router: router.NewRouter(
			healthController,
			summaryController,
			movementsController,
			reportController,
			callsController,
			referenceController,
			snapshotController,
			refreshRateLimiter,
		),
	}
}
