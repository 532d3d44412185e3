// Package ledger contains the multi-currency aggregation core: pure filters
// over snapshot collections and the folds that produce per-currency totals.
package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/opsboard/backend/internal/domain/entity"
)

// Filter is the client-side selection applied to a snapshot. A nil field
// means "no filter"; filtering with both fields unset is the identity.
type Filter struct {
	WalletID   *int64
	CategoryID *int64
}

// CacheKey derives the memoization key for results computed from the given
// snapshot version under this filter. Keying by the exact (version, filter)
// pair guarantees a result computed from a stale snapshot or an old filter
// state can never be served for a newer one.
func (f Filter) CacheKey(version uuid.UUID) string {
	wallet, category := "all", "all"
	if f.WalletID != nil {
		wallet = fmt.Sprintf("%d", *f.WalletID)
	}
	if f.CategoryID != nil {
		category = fmt.Sprintf("%d", *f.CategoryID)
	}
	return fmt.Sprintf("summary:%s:w=%s:c=%s", version, wallet, category)
}

// TopUpsByWallet retains top-ups into the given wallet. A nil walletID
// returns the input unchanged.
func TopUpsByWallet(topUps []entity.TopUp, walletID *int64) []entity.TopUp {
	if walletID == nil {
		return topUps
	}
	out := make([]entity.TopUp, 0, len(topUps))
	for _, t := range topUps {
		if t.WalletID == *walletID {
			out = append(out, t)
		}
	}
	return out
}

// TransfersByWallet retains transfers touching the given wallet on either
// side: a transfer out of the wallet is as relevant as one into it. A nil
// walletID returns the input unchanged.
func TransfersByWallet(transfers []entity.Transfer, walletID *int64) []entity.Transfer {
	if walletID == nil {
		return transfers
	}
	out := make([]entity.Transfer, 0, len(transfers))
	for _, t := range transfers {
		if t.Touches(*walletID) {
			out = append(out, t)
		}
	}
	return out
}

// BalancesByWallet retains the balance entry for the given wallet, or all
// entries when walletID is nil.
func BalancesByWallet(balances []entity.WalletBalance, walletID *int64) []entity.WalletBalance {
	if walletID == nil {
		return balances
	}
	out := make([]entity.WalletBalance, 0, 1)
	for _, b := range balances {
		if b.WalletID == *walletID {
			out = append(out, b)
		}
	}
	return out
}

// ReportByCategory returns the report with its breakdown narrowed to the
// given category. The row's own paid/unpaid totals are left untouched: they
// describe the whole day regardless of category selection. A nil categoryID
// (or a nil report) returns the input unchanged; the input is never mutated.
func ReportByCategory(report *entity.ExpenseReport, categoryID *int64) *entity.ExpenseReport {
	if report == nil || categoryID == nil {
		return report
	}
	narrowed := *report
	narrowed.Categories = make([]entity.CategoryBreakdown, 0, 1)
	for _, c := range report.Categories {
		if c.CategoryID == *categoryID {
			narrowed.Categories = append(narrowed.Categories, c)
		}
	}
	return &narrowed
}

// ReportsByCategory applies ReportByCategory to every row.
func ReportsByCategory(reports []entity.ExpenseReport, categoryID *int64) []entity.ExpenseReport {
	if categoryID == nil {
		return reports
	}
	out := make([]entity.ExpenseReport, len(reports))
	for i := range reports {
		out[i] = *ReportByCategory(&reports[i], categoryID)
	}
	return out
}
