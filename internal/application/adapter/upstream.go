// Package adapter defines interfaces for external service integrations.
package adapter

import (
	"context"
	"time"

	"github.com/opsboard/backend/internal/domain/entity"
)

// DailyReportQuery selects which day's report to fetch. With neither field
// set, upstream returns the report for the currently active exercise.
type DailyReportQuery struct {
	ExerciseID *int64
	Date       *time.Time
}

// UpstreamService is the client for the upstream operations API. Everything
// it returns is an already-computed snapshot; this service never writes
// operational data back.
type UpstreamService interface {
	// FetchCurrentExercise returns the currently active exercise.
	FetchCurrentExercise(ctx context.Context) (*entity.Exercise, error)

	// FetchDailyReport returns the expense report for one day.
	FetchDailyReport(ctx context.Context, query DailyReportQuery) (*entity.ExpenseReport, error)

	// FetchPeriodReports returns one report per exercise in [start, end].
	FetchPeriodReports(ctx context.Context, start, end time.Time) ([]entity.ExpenseReport, error)

	// FetchBalances returns wallet balances, scoped to an exercise when
	// exerciseID is non-nil.
	FetchBalances(ctx context.Context, exerciseID *int64) ([]entity.WalletBalance, error)

	// FetchTopUps returns the top-ups recorded in an exercise.
	FetchTopUps(ctx context.Context, exerciseID int64) ([]entity.TopUp, error)

	// FetchTransfers returns the transfers recorded in an exercise.
	FetchTransfers(ctx context.Context, exerciseID int64) ([]entity.Transfer, error)

	// FetchWallets returns the wallet reference list.
	FetchWallets(ctx context.Context) ([]entity.Wallet, error)

	// FetchCategories returns the category reference list.
	FetchCategories(ctx context.Context) ([]entity.Category, error)

	// FetchCurrencyLabels returns the currency reference list.
	FetchCurrencyLabels(ctx context.Context) ([]entity.CurrencyLabel, error)

	// FetchCallDays returns upstream-computed call statistics per day in
	// [start, end].
	FetchCallDays(ctx context.Context, start, end time.Time) ([]entity.CallDay, error)
}

// SnapshotRepository holds the current snapshot. Implementations replace it
// wholesale and must never hand out a partially updated snapshot.
type SnapshotRepository interface {
	// Current returns the latest snapshot, or nil before the first refresh.
	Current() *entity.Snapshot

	// Replace stores snapshot as the new current one.
	Replace(snapshot *entity.Snapshot)
}
