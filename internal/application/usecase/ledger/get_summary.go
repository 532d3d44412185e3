package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// GetSummaryInput represents the input for computing a filtered summary.
type GetSummaryInput struct {
	Filter Filter
}

// FormattedSummary carries the display strings for the five totals.
type FormattedSummary struct {
	TotalExpenses  string `json:"total_expenses"`
	TotalUnpaid    string `json:"total_unpaid"`
	TotalTopUps    string `json:"total_top_ups"`
	TotalBalances  string `json:"total_balances"`
	TotalTransfers string `json:"total_transfers"`
}

// GetSummaryOutput represents the output of computing a filtered summary:
// the five totals plus the filtered collections they were folded from.
type GetSummaryOutput struct {
	SnapshotVersion uuid.UUID
	FetchedAt       time.Time
	Exercise        *entity.Exercise

	Summary   Summary
	Formatted FormattedSummary

	Report    *entity.ExpenseReport
	Balances  []entity.WalletBalance
	TopUps    []entity.TopUp
	Transfers []entity.Transfer
}

// GetSummaryUseCase filters the current snapshot and folds it into the five
// per-currency totals. Results are memoized per exact (snapshot version,
// filter) pair; everything else is recomputed from scratch on every call.
type GetSummaryUseCase struct {
	snapshots adapter.SnapshotRepository
	cache     SummaryCache
	formatter *currency.Formatter
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance. cache may
// be nil, in which case every call recomputes.
func NewGetSummaryUseCase(
	snapshots adapter.SnapshotRepository,
	cache SummaryCache,
	formatter *currency.Formatter,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		snapshots: snapshots,
		cache:     cache,
		formatter: formatter,
	}
}

// Execute computes the summary for the current snapshot under input.Filter.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	snapshot := uc.snapshots.Current()
	if snapshot == nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeNoSnapshot,
			"no snapshot available, refresh first",
			domainerror.ErrNoSnapshot,
		)
	}

	filter := input.Filter

	// The category filter narrows the report's breakdown only; top-ups,
	// transfers and balances follow the wallet filter alone.
	report := ReportByCategory(snapshot.Report, filter.CategoryID)
	topUps := TopUpsByWallet(snapshot.TopUps, filter.WalletID)
	transfers := TransfersByWallet(snapshot.Transfers, filter.WalletID)
	balances := BalancesByWallet(snapshot.Balances, filter.WalletID)

	summary := uc.lookupOrAggregate(ctx, snapshot, filter, report, topUps, transfers, balances)

	return &GetSummaryOutput{
		SnapshotVersion: snapshot.Version,
		FetchedAt:       snapshot.FetchedAt,
		Exercise:        snapshot.Exercise,
		Summary:         summary,
		Formatted: FormattedSummary{
			TotalExpenses:  uc.formatter.Format(summary.TotalExpenses),
			TotalUnpaid:    uc.formatter.Format(summary.TotalUnpaid),
			TotalTopUps:    uc.formatter.Format(summary.TotalTopUps),
			TotalBalances:  uc.formatter.Format(summary.TotalBalances),
			TotalTransfers: uc.formatter.Format(summary.TotalTransfers),
		},
		Report:    report,
		Balances:  balances,
		TopUps:    topUps,
		Transfers: transfers,
	}, nil
}

// lookupOrAggregate serves the summary from the cache when a value exists
// for this exact (snapshot version, filter) pair, and recomputes otherwise.
// Cache failures are logged and degrade to recomputation.
func (uc *GetSummaryUseCase) lookupOrAggregate(
	ctx context.Context,
	snapshot *entity.Snapshot,
	filter Filter,
	report *entity.ExpenseReport,
	topUps []entity.TopUp,
	transfers []entity.Transfer,
	balances []entity.WalletBalance,
) Summary {
	key := filter.CacheKey(snapshot.Version)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "summary cache lookup failed", "key", key, "error", err)
		} else if cached != nil {
			return *cached
		}
	}

	var reports []entity.ExpenseReport
	if report != nil {
		reports = []entity.ExpenseReport{*report}
	}
	summary := Aggregate(reports, topUps, transfers, balances)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, &summary); err != nil {
			slog.WarnContext(ctx, "summary cache store failed", "key", key, "error", err)
		}
	}
	return summary
}
