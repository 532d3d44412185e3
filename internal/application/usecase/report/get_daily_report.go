// Package report implements use cases for daily and period expense reports.
package report

import (
	"context"
	"time"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// GetDailyReportInput represents the input for fetching one day's report.
// With neither ExerciseID nor Date set, upstream resolves the currently
// active exercise.
type GetDailyReportInput struct {
	ExerciseID *int64
	Date       *time.Time
	CategoryID *int64
}

// GetDailyReportOutput represents the output of fetching one day's report.
type GetDailyReportOutput struct {
	Report *entity.ExpenseReport

	FormattedPaid    string
	FormattedUnpaid  string
	FormattedBalance string
}

// GetDailyReportUseCase fetches a single day's expense report from upstream
// and optionally narrows its category breakdown.
type GetDailyReportUseCase struct {
	upstream  adapter.UpstreamService
	formatter *currency.Formatter
}

// NewGetDailyReportUseCase creates a new GetDailyReportUseCase instance.
func NewGetDailyReportUseCase(upstream adapter.UpstreamService, formatter *currency.Formatter) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		upstream:  upstream,
		formatter: formatter,
	}
}

// Execute fetches and filters the daily report.
func (uc *GetDailyReportUseCase) Execute(ctx context.Context, input GetDailyReportInput) (*GetDailyReportOutput, error) {
	fetched, err := uc.upstream.FetchDailyReport(ctx, adapter.DailyReportQuery{
		ExerciseID: input.ExerciseID,
		Date:       input.Date,
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to fetch daily report",
			err,
		)
	}
	if fetched == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNotFound,
			"no report for the requested day",
			domainerror.ErrReportNotFound,
		)
	}

	// The category filter narrows the breakdown only; the day totals keep
	// describing the whole day.
	filtered := ledger.ReportByCategory(fetched, input.CategoryID)

	return &GetDailyReportOutput{
		Report:           filtered,
		FormattedPaid:    uc.formatter.Format(filtered.PaidTotal),
		FormattedUnpaid:  uc.formatter.Format(filtered.UnpaidTotal),
		FormattedBalance: uc.formatter.Format(filtered.BalanceTotal),
	}, nil
}
