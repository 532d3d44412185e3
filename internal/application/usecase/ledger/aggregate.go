package ledger

import (
	"github.com/opsboard/backend/internal/domain/entity"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

// Summary holds the five per-currency totals derived from one filtered
// snapshot. Each is an independent pure fold; recomputing over the same
// inputs yields Equal maps.
type Summary struct {
	TotalExpenses  valueobject.MoneyMap `json:"total_expenses"`
	TotalUnpaid    valueobject.MoneyMap `json:"total_unpaid"`
	TotalTopUps    valueobject.MoneyMap `json:"total_top_ups"`
	TotalBalances  valueobject.MoneyMap `json:"total_balances"`
	TotalTransfers valueobject.MoneyMap `json:"total_transfers"`
}

// Equal reports value equality of all five totals.
func (s Summary) Equal(other Summary) bool {
	return s.TotalExpenses.Equal(other.TotalExpenses) &&
		s.TotalUnpaid.Equal(other.TotalUnpaid) &&
		s.TotalTopUps.Equal(other.TotalTopUps) &&
		s.TotalBalances.Equal(other.TotalBalances) &&
		s.TotalTransfers.Equal(other.TotalTransfers)
}

// Aggregate computes all five totals for an already-filtered snapshot.
func Aggregate(
	reports []entity.ExpenseReport,
	topUps []entity.TopUp,
	transfers []entity.Transfer,
	balances []entity.WalletBalance,
) Summary {
	return Summary{
		TotalExpenses:  TotalExpenses(reports),
		TotalUnpaid:    TotalUnpaid(reports),
		TotalTopUps:    TotalTopUps(topUps),
		TotalBalances:  TotalBalances(balances),
		TotalTransfers: TotalTransfers(transfers),
	}
}

// TotalExpenses merges each report row's paid-expense map. Rows whose paid
// map failed boundary validation (nil) are skipped rather than corrupting
// the aggregate.
func TotalExpenses(reports []entity.ExpenseReport) valueobject.MoneyMap {
	total := valueobject.NewMoneyMap()
	for _, r := range reports {
		if r.PaidTotal == nil {
			continue
		}
		total = total.Merge(r.PaidTotal)
	}
	return total
}

// TotalUnpaid merges each report row's unpaid-expense map, skipping rows
// whose unpaid map failed boundary validation.
func TotalUnpaid(reports []entity.ExpenseReport) valueobject.MoneyMap {
	total := valueobject.NewMoneyMap()
	for _, r := range reports {
		if r.UnpaidTotal == nil {
			continue
		}
		total = total.Merge(r.UnpaidTotal)
	}
	return total
}

// TotalTopUps sums each top-up's amount under its currency code. A missing
// code is attributed to the home currency.
func TotalTopUps(topUps []entity.TopUp) valueobject.MoneyMap {
	total := valueobject.NewMoneyMap()
	for _, t := range topUps {
		total = total.Add(t.CurrencyCode, t.Amount)
	}
	return total
}

// TotalBalances merges the total-balance map of every wallet balance row.
func TotalBalances(balances []entity.WalletBalance) valueobject.MoneyMap {
	total := valueobject.NewMoneyMap()
	for _, b := range balances {
		if b.TotalBalance == nil {
			continue
		}
		total = total.Merge(b.TotalBalance)
	}
	return total
}

// TotalTransfers sums only the source side of each transfer. The destination
// amount of a cross-currency transfer is displayed per record but never
// summed: adding both sides would double-count the move or smuggle in an
// implicit conversion.
func TotalTransfers(transfers []entity.Transfer) valueobject.MoneyMap {
	total := valueobject.NewMoneyMap()
	for _, t := range transfers {
		total = total.Add(t.CurrencyCode, t.Amount)
	}
	return total
}
