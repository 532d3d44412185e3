package dto

import (
	"time"

	"github.com/opsboard/backend/internal/application/usecase/report"
	"github.com/opsboard/backend/internal/domain/entity"
)

// ReportResponse represents one exercise's expense report in API responses.
type ReportResponse struct {
	ExerciseID   int64                       `json:"exercise_id"`
	Date         string                      `json:"date"`
	Active       bool                        `json:"active"`
	Categories   []CategoryBreakdownResponse `json:"categories"`
	PaidTotal    map[string]float64          `json:"paid_total"`
	UnpaidTotal  map[string]float64          `json:"unpaid_total"`
	BalanceTotal map[string]float64          `json:"balance_total"`
}

// CategoryBreakdownResponse represents one category row of a report.
type CategoryBreakdownResponse struct {
	CategoryID    int64              `json:"category_id"`
	CategoryName  string             `json:"category_name"`
	CategoryColor string             `json:"category_color"`
	PaidTotal     map[string]float64 `json:"paid_total"`
	UnpaidTotal   map[string]float64 `json:"unpaid_total"`
	GrandTotal    map[string]float64 `json:"grand_total"`
}

// DailyReportResponse represents the response for the daily report API.
type DailyReportResponse struct {
	Report           ReportResponse `json:"report"`
	FormattedPaid    string         `json:"formatted_paid"`
	FormattedUnpaid  string         `json:"formatted_unpaid"`
	FormattedBalance string         `json:"formatted_balance"`
}

// PeriodReportResponse represents the response for the period report API.
type PeriodReportResponse struct {
	Reports      []ReportResponse `json:"reports"`
	PeriodPaid   MoneyResponse    `json:"period_paid"`
	PeriodUnpaid MoneyResponse    `json:"period_unpaid"`
}

func toExerciseResponse(exercise *entity.Exercise) ExerciseResponse {
	response := ExerciseResponse{
		ID:     exercise.ID,
		Date:   exercise.Date.Format("2006-01-02"),
		Active: exercise.Active,
		Notes:  exercise.Notes,
	}
	if exercise.OpenedAt != nil {
		response.OpenedAt = exercise.OpenedAt.UTC().Format(time.RFC3339)
	}
	if exercise.ClosedAt != nil {
		response.ClosedAt = exercise.ClosedAt.UTC().Format(time.RFC3339)
	}
	return response
}

func toReportResponse(r *entity.ExpenseReport) ReportResponse {
	categories := make([]CategoryBreakdownResponse, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = CategoryBreakdownResponse{
			CategoryID:    c.CategoryID,
			CategoryName:  c.CategoryName,
			CategoryColor: c.CategoryColor,
			PaidTotal:     toAmounts(c.PaidTotal),
			UnpaidTotal:   toAmounts(c.UnpaidTotal),
			GrandTotal:    toAmounts(c.GrandTotal),
		}
	}
	return ReportResponse{
		ExerciseID:   r.ExerciseID,
		Date:         r.Date.Format("2006-01-02"),
		Active:       r.Active,
		Categories:   categories,
		PaidTotal:    toAmounts(r.PaidTotal),
		UnpaidTotal:  toAmounts(r.UnpaidTotal),
		BalanceTotal: toAmounts(r.BalanceTotal),
	}
}

// ToDailyReportResponse converts a GetDailyReportOutput to its DTO.
func ToDailyReportResponse(output *report.GetDailyReportOutput) DailyReportResponse {
	return DailyReportResponse{
		Report:           toReportResponse(output.Report),
		FormattedPaid:    output.FormattedPaid,
		FormattedUnpaid:  output.FormattedUnpaid,
		FormattedBalance: output.FormattedBalance,
	}
}

// ToPeriodReportResponse converts a GetPeriodReportOutput to its DTO.
func ToPeriodReportResponse(output *report.GetPeriodReportOutput) PeriodReportResponse {
	reports := make([]ReportResponse, len(output.Reports))
	for i := range output.Reports {
		reports[i] = toReportResponse(&output.Reports[i])
	}
	return PeriodReportResponse{
		Reports:      reports,
		PeriodPaid:   ToMoneyResponse(output.PeriodPaid, output.FormattedPaid),
		PeriodUnpaid: ToMoneyResponse(output.PeriodUnpaid, output.FormattedUnpaid),
	}
}
