// Package calls implements the call-statistics overview use case.
package calls

import (
	"context"
	"time"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// GetOverviewInput represents the input for the call overview. Start and End
// are inclusive day bounds.
type GetOverviewInput struct {
	Start time.Time
	End   time.Time
}

// OverviewTotals re-sums the per-day counters across the range. Rates are
// derived from the summed counters; the per-day averages and percentiles
// stay upstream-computed and are surfaced per row only.
type OverviewTotals struct {
	Total        int `json:"total"`
	Answered     int `json:"answered"`
	Abandoned    int `json:"abandoned"`
	WaitedOver30 int `json:"waited_over_30"`
	AnswerRate   int `json:"answer_rate"`
	AbandonRate  int `json:"abandon_rate"`
}

// GetOverviewOutput represents the output of the call overview.
type GetOverviewOutput struct {
	Days   []entity.CallDay
	Totals OverviewTotals
}

// GetOverviewUseCase fetches upstream call statistics for a date range and
// folds the counters into range totals.
type GetOverviewUseCase struct {
	upstream adapter.UpstreamService
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(upstream adapter.UpstreamService) *GetOverviewUseCase {
	return &GetOverviewUseCase{upstream: upstream}
}

// Execute validates the range, fetches the per-day rows and sums them.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	days, err := uc.upstream.FetchCallDays(ctx, input.Start, input.End)
	if err != nil {
		return nil, domainerror.NewCallsError(
			domainerror.ErrCodeCallsInternalError,
			"failed to fetch call statistics",
			err,
		)
	}

	totals := OverviewTotals{}
	for _, d := range days {
		totals.Total += d.Total
		totals.Answered += d.Answered
		totals.Abandoned += d.Abandoned
		totals.WaitedOver30 += d.WaitedOver30
	}
	if totals.Total > 0 {
		totals.AnswerRate = totals.Answered * 100 / totals.Total
		totals.AbandonRate = totals.Abandoned * 100 / totals.Total
	}

	return &GetOverviewOutput{Days: days, Totals: totals}, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewCallsError(
			domainerror.ErrCodeCallsMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewCallsError(
			domainerror.ErrCodeCallsMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewCallsError(
			domainerror.ErrCodeCallsInvalidDateRange,
			"end_date must not precede start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
