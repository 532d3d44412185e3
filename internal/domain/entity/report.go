package entity

import (
	"time"

	"github.com/opsboard/backend/internal/domain/valueobject"
)

// CategoryBreakdown is one category's slice of a daily expense report.
// All three totals are computed upstream; this service only filters and
// re-sums them.
type CategoryBreakdown struct {
	CategoryID    int64
	CategoryName  string
	CategoryColor string
	PaidTotal     valueobject.MoneyMap
	UnpaidTotal   valueobject.MoneyMap
	GrandTotal    valueobject.MoneyMap
}

// ExpenseReport is the upstream daily report for one exercise: whole-day
// paid/unpaid/balance totals plus an ordered per-category breakdown.
//
// A nil PaidTotal or UnpaidTotal means the upstream field failed boundary
// validation (wrong shape); aggregation folds skip such rows for that total.
type ExpenseReport struct {
	ExerciseID   int64
	Date         time.Time
	Active       bool
	Categories   []CategoryBreakdown
	PaidTotal    valueobject.MoneyMap
	UnpaidTotal  valueobject.MoneyMap
	BalanceTotal valueobject.MoneyMap
}
