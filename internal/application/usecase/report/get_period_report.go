package report

import (
	"context"
	"time"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

// maxPeriodDays caps period queries, matching the upstream API limit.
const maxPeriodDays = 90

// GetPeriodReportInput represents the input for fetching a period report.
// Start and End are inclusive day bounds.
type GetPeriodReportInput struct {
	Start      time.Time
	End        time.Time
	CategoryID *int64
}

// GetPeriodReportOutput represents the output of fetching a period report:
// one row per exercise in the range plus period-wide totals re-summed here.
type GetPeriodReportOutput struct {
	Reports []entity.ExpenseReport

	PeriodPaid   valueobject.MoneyMap
	PeriodUnpaid valueobject.MoneyMap

	FormattedPaid   string
	FormattedUnpaid string
}

// GetPeriodReportUseCase fetches the per-day reports for a date range and
// folds them into period totals.
type GetPeriodReportUseCase struct {
	upstream  adapter.UpstreamService
	formatter *currency.Formatter
}

// NewGetPeriodReportUseCase creates a new GetPeriodReportUseCase instance.
func NewGetPeriodReportUseCase(upstream adapter.UpstreamService, formatter *currency.Formatter) *GetPeriodReportUseCase {
	return &GetPeriodReportUseCase{
		upstream:  upstream,
		formatter: formatter,
	}
}

// Execute validates the range, fetches the reports and re-sums the period
// totals from the full-day rows. The category filter narrows each row's
// breakdown but never the totals being summed.
func (uc *GetPeriodReportUseCase) Execute(ctx context.Context, input GetPeriodReportInput) (*GetPeriodReportOutput, error) {
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	fetched, err := uc.upstream.FetchPeriodReports(ctx, input.Start, input.End)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to fetch period reports",
			err,
		)
	}

	reports := ledger.ReportsByCategory(fetched, input.CategoryID)

	paid := ledger.TotalExpenses(fetched)
	unpaid := ledger.TotalUnpaid(fetched)

	return &GetPeriodReportOutput{
		Reports:         reports,
		PeriodPaid:      paid,
		PeriodUnpaid:    unpaid,
		FormattedPaid:   uc.formatter.Format(paid),
		FormattedUnpaid: uc.formatter.Format(unpaid),
	}, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not precede start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	if end.Sub(start) > maxPeriodDays*24*time.Hour {
		return domainerror.NewReportError(
			domainerror.ErrCodePeriodTooLong,
			"period must not exceed 90 days",
			domainerror.ErrPeriodTooLong,
		)
	}
	return nil
}
