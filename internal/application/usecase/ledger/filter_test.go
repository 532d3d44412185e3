package ledger

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsboard/backend/internal/domain/entity"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTopUpsByWallet(t *testing.T) {
	topUps := []entity.TopUp{
		{ID: 1, WalletID: 1, Amount: decimal.NewFromInt(100), CurrencyCode: "RON"},
		{ID: 2, WalletID: 2, Amount: decimal.NewFromInt(50), CurrencyCode: "EUR"},
	}

	t.Run("nil filter returns the input unchanged", func(t *testing.T) {
		got := TopUpsByWallet(topUps, nil)
		if !reflect.DeepEqual(got, topUps) {
			t.Error("unset filter must be the identity")
		}
	})

	t.Run("retains only the matching wallet", func(t *testing.T) {
		got := TopUpsByWallet(topUps, int64Ptr(1))
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("got %+v, want only top-up 1", got)
		}
	})

	t.Run("empty input filters to empty", func(t *testing.T) {
		if got := TopUpsByWallet(nil, int64Ptr(1)); len(got) != 0 {
			t.Errorf("got %d records from empty input", len(got))
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := make([]entity.TopUp, len(topUps))
		copy(before, topUps)
		_ = TopUpsByWallet(topUps, int64Ptr(2))
		if !reflect.DeepEqual(topUps, before) {
			t.Error("filter mutated its input")
		}
	})
}

func TestTransfersByWallet(t *testing.T) {
	transfers := []entity.Transfer{
		{ID: 1, SourceWalletID: 1, DestWalletID: 2, Amount: decimal.NewFromInt(100), CurrencyCode: "RON"},
		{ID: 2, SourceWalletID: 3, DestWalletID: 1, Amount: decimal.NewFromInt(20), CurrencyCode: "EUR"},
		{ID: 3, SourceWalletID: 2, DestWalletID: 3, Amount: decimal.NewFromInt(5), CurrencyCode: "RON"},
	}

	t.Run("matches source or destination side", func(t *testing.T) {
		got := TransfersByWallet(transfers, int64Ptr(1))
		if len(got) != 2 {
			t.Fatalf("got %d transfers, want 2", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("got ids %d,%d, want 1,2", got[0].ID, got[1].ID)
		}
	})

	t.Run("nil filter is the identity", func(t *testing.T) {
		if got := TransfersByWallet(transfers, nil); !reflect.DeepEqual(got, transfers) {
			t.Error("unset filter must be the identity")
		}
	})

	t.Run("unknown wallet matches nothing", func(t *testing.T) {
		if got := TransfersByWallet(transfers, int64Ptr(99)); len(got) != 0 {
			t.Errorf("got %d transfers for unknown wallet", len(got))
		}
	})
}

func TestBalancesByWallet(t *testing.T) {
	balances := []entity.WalletBalance{
		{WalletID: 1, WalletName: "Casa", TotalBalance: valueobject.MoneyMap{"RON": decimal.NewFromInt(900)}},
		{WalletID: 2, WalletName: "Banca", TotalBalance: valueobject.MoneyMap{"EUR": decimal.NewFromInt(40)}},
	}

	t.Run("retains the single matching balance", func(t *testing.T) {
		got := BalancesByWallet(balances, int64Ptr(2))
		if len(got) != 1 || got[0].WalletID != 2 {
			t.Errorf("got %+v, want only wallet 2", got)
		}
	})

	t.Run("nil filter keeps all balances", func(t *testing.T) {
		if got := BalancesByWallet(balances, nil); len(got) != 2 {
			t.Errorf("got %d balances, want 2", len(got))
		}
	})
}

func TestReportByCategory(t *testing.T) {
	report := &entity.ExpenseReport{
		ExerciseID: 7,
		Categories: []entity.CategoryBreakdown{
			{CategoryID: 10, CategoryName: "Marfa", PaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(300)}},
			{CategoryID: 20, CategoryName: "Utilitati", PaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(80)}},
		},
		PaidTotal:   valueobject.MoneyMap{"RON": decimal.NewFromInt(380)},
		UnpaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(45)},
	}

	t.Run("nil filter returns the same report", func(t *testing.T) {
		if got := ReportByCategory(report, nil); got != report {
			t.Error("unset filter must return the input report")
		}
	})

	t.Run("narrows the breakdown without touching day totals", func(t *testing.T) {
		got := ReportByCategory(report, int64Ptr(10))
		if len(got.Categories) != 1 || got.Categories[0].CategoryID != 10 {
			t.Fatalf("breakdown = %+v, want only category 10", got.Categories)
		}
		// Top-level totals reflect the whole day regardless of selection.
		if !got.PaidTotal.Equal(report.PaidTotal) || !got.UnpaidTotal.Equal(report.UnpaidTotal) {
			t.Error("category filter must not recompute the row's day totals")
		}
	})

	t.Run("does not mutate the original report", func(t *testing.T) {
		_ = ReportByCategory(report, int64Ptr(20))
		if len(report.Categories) != 2 {
			t.Error("filter mutated the original breakdown")
		}
	})

	t.Run("unknown category narrows to an empty breakdown", func(t *testing.T) {
		got := ReportByCategory(report, int64Ptr(99))
		if len(got.Categories) != 0 {
			t.Errorf("breakdown = %+v, want empty", got.Categories)
		}
	})

	t.Run("nil report stays nil", func(t *testing.T) {
		if got := ReportByCategory(nil, int64Ptr(10)); got != nil {
			t.Error("nil report must pass through")
		}
	})
}

func TestFilter_CacheKey(t *testing.T) {
	version := uuid.MustParse("b5eab219-37b3-4839-9922-3454d3bf1acd")

	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"no filters", Filter{}, "summary:b5eab219-37b3-4839-9922-3454d3bf1acd:w=all:c=all"},
		{"wallet only", Filter{WalletID: int64Ptr(3)}, "summary:b5eab219-37b3-4839-9922-3454d3bf1acd:w=3:c=all"},
		{"both", Filter{WalletID: int64Ptr(3), CategoryID: int64Ptr(8)}, "summary:b5eab219-37b3-4839-9922-3454d3bf1acd:w=3:c=8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.CacheKey(version); got != tt.want {
				t.Errorf("CacheKey = %q, want %q", got, tt.want)
			}
		})
	}
}
