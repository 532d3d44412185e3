package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

type stubSnapshotRepository struct {
	snapshot *entity.Snapshot
}

func (r *stubSnapshotRepository) Current() *entity.Snapshot  { return r.snapshot }
func (r *stubSnapshotRepository) Replace(s *entity.Snapshot) { r.snapshot = s }

type fakeSummaryCache struct {
	entries map[string]Summary
	gets    int
	sets    int
	getErr  error
	setErr  error
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: map[string]Summary{}}
}

func (c *fakeSummaryCache) Get(_ context.Context, key string) (*Summary, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	if s, ok := c.entries[key]; ok {
		return &s, nil
	}
	return nil, nil
}

func (c *fakeSummaryCache) Set(_ context.Context, key string, summary *Summary) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = *summary
	return nil
}

func testSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Version: uuid.New(),
		Exercise: &entity.Exercise{
			ID:     7,
			Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Active: true,
		},
		Report: &entity.ExpenseReport{
			ExerciseID: 7,
			Categories: []entity.CategoryBreakdown{
				{CategoryID: 10, CategoryName: "Marfa", PaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(300)}},
				{CategoryID: 20, CategoryName: "Utilitati", PaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(80)}},
			},
			PaidTotal:   valueobject.MoneyMap{"RON": decimal.NewFromInt(380)},
			UnpaidTotal: valueobject.MoneyMap{"RON": decimal.NewFromInt(45)},
		},
		Balances: []entity.WalletBalance{
			{WalletID: 1, WalletName: "Casa", TotalBalance: valueobject.MoneyMap{"RON": decimal.NewFromInt(900)}},
			{WalletID: 2, WalletName: "Banca", TotalBalance: valueobject.MoneyMap{"EUR": decimal.NewFromInt(40)}},
		},
		TopUps: []entity.TopUp{
			{ID: 1, WalletID: 1, Amount: decimal.NewFromInt(100), CurrencyCode: "RON"},
			{ID: 2, WalletID: 2, Amount: decimal.NewFromInt(50), CurrencyCode: "EUR"},
		},
		Transfers: []entity.Transfer{
			{ID: 1, SourceWalletID: 1, DestWalletID: 2, Amount: decimal.NewFromInt(60), CurrencyCode: "RON"},
		},
		FetchedAt: time.Now(),
	}
}

func newTestUseCase(snapshot *entity.Snapshot, cache SummaryCache) *GetSummaryUseCase {
	formatter := currency.NewFormatter(currency.NewRegistry())
	return NewGetSummaryUseCase(&stubSnapshotRepository{snapshot: snapshot}, cache, formatter)
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a coded error when no snapshot was fetched yet", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Execute(ctx, GetSummaryInput{})
		if err == nil {
			t.Fatal("expected an error for a missing snapshot")
		}
		if !errors.Is(err, domainerror.ErrNoSnapshot) {
			t.Errorf("err = %v, want wrapping ErrNoSnapshot", err)
		}
	})

	t.Run("unfiltered request folds the whole snapshot", func(t *testing.T) {
		uc := newTestUseCase(testSnapshot(), nil)
		out, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		wantTopUps := valueobject.MoneyMap{"RON": decimal.NewFromInt(100), "EUR": decimal.NewFromInt(50)}
		if !out.Summary.TotalTopUps.Equal(wantTopUps) {
			t.Errorf("TotalTopUps = %v, want %v", out.Summary.TotalTopUps, wantTopUps)
		}
		if !out.Summary.TotalExpenses.Equal(valueobject.MoneyMap{"RON": decimal.NewFromInt(380)}) {
			t.Errorf("TotalExpenses = %v", out.Summary.TotalExpenses)
		}
		if got := out.Formatted.TotalTopUps; got != "50 € / 100 lei" {
			t.Errorf("formatted top-ups = %q, want %q", got, "50 € / 100 lei")
		}
	})

	t.Run("wallet filter narrows the top-up total to one wallet", func(t *testing.T) {
		uc := newTestUseCase(testSnapshot(), nil)
		walletID := int64(1)
		out, err := uc.Execute(ctx, GetSummaryInput{Filter: Filter{WalletID: &walletID}})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !out.Summary.TotalTopUps.Equal(valueobject.MoneyMap{"RON": decimal.NewFromInt(100)}) {
			t.Errorf("TotalTopUps = %v, want {RON:100}", out.Summary.TotalTopUps)
		}
		if len(out.TopUps) != 1 || out.TopUps[0].WalletID != 1 {
			t.Errorf("filtered top-ups = %+v, want only wallet 1", out.TopUps)
		}
		// Expenses come from the report, which the wallet filter does not touch.
		if !out.Summary.TotalExpenses.Equal(valueobject.MoneyMap{"RON": decimal.NewFromInt(380)}) {
			t.Errorf("TotalExpenses = %v, want {RON:380}", out.Summary.TotalExpenses)
		}
	})

	t.Run("category filter narrows the breakdown and keeps day totals", func(t *testing.T) {
		uc := newTestUseCase(testSnapshot(), nil)
		categoryID := int64(10)
		out, err := uc.Execute(ctx, GetSummaryInput{Filter: Filter{CategoryID: &categoryID}})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(out.Report.Categories) != 1 || out.Report.Categories[0].CategoryID != 10 {
			t.Errorf("breakdown = %+v, want only category 10", out.Report.Categories)
		}
		if !out.Summary.TotalExpenses.Equal(valueobject.MoneyMap{"RON": decimal.NewFromInt(380)}) {
			t.Errorf("TotalExpenses = %v, want the full day total", out.Summary.TotalExpenses)
		}
	})

	t.Run("memoizes per snapshot version and filter", func(t *testing.T) {
		snapshot := testSnapshot()
		cache := newFakeSummaryCache()
		uc := newTestUseCase(snapshot, cache)

		first, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("first Execute: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("sets = %d after first call, want 1", cache.sets)
		}

		second, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("second Execute: %v", err)
		}
		if cache.sets != 1 {
			t.Errorf("sets = %d after cache hit, want still 1", cache.sets)
		}
		if !first.Summary.Equal(second.Summary) {
			t.Errorf("cached summary %+v differs from computed %+v", second.Summary, first.Summary)
		}
	})

	t.Run("different filters use different cache entries", func(t *testing.T) {
		snapshot := testSnapshot()
		cache := newFakeSummaryCache()
		uc := newTestUseCase(snapshot, cache)

		if _, err := uc.Execute(ctx, GetSummaryInput{}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		walletID := int64(2)
		out, err := uc.Execute(ctx, GetSummaryInput{Filter: Filter{WalletID: &walletID}})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if cache.sets != 2 {
			t.Errorf("sets = %d, want 2 distinct entries", cache.sets)
		}
		if !out.Summary.TotalTopUps.Equal(valueobject.MoneyMap{"EUR": decimal.NewFromInt(50)}) {
			t.Errorf("TotalTopUps = %v, want {EUR:50}", out.Summary.TotalTopUps)
		}
	})

	t.Run("new snapshot version invalidates by key", func(t *testing.T) {
		snapshot := testSnapshot()
		repo := &stubSnapshotRepository{snapshot: snapshot}
		cache := newFakeSummaryCache()
		formatter := currency.NewFormatter(currency.NewRegistry())
		uc := NewGetSummaryUseCase(repo, cache, formatter)

		if _, err := uc.Execute(ctx, GetSummaryInput{}); err != nil {
			t.Fatalf("Execute: %v", err)
		}

		replacement := testSnapshot()
		replacement.TopUps = append(replacement.TopUps, entity.TopUp{
			ID: 3, WalletID: 1, Amount: decimal.NewFromInt(200), CurrencyCode: "RON",
		})
		repo.Replace(replacement)

		out, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if cache.sets != 2 {
			t.Errorf("sets = %d, want a new entry for the new version", cache.sets)
		}
		if !out.Summary.TotalTopUps.Get("RON").Equal(decimal.NewFromInt(300)) {
			t.Errorf("RON top-ups = %v, want 300 from the fresh snapshot", out.Summary.TotalTopUps.Get("RON"))
		}
	})

	t.Run("cache failures degrade to recomputation", func(t *testing.T) {
		cache := newFakeSummaryCache()
		cache.getErr = errors.New("connection refused")
		cache.setErr = errors.New("connection refused")
		uc := newTestUseCase(testSnapshot(), cache)

		out, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("Execute must not fail on cache errors: %v", err)
		}
		if !out.Summary.TotalExpenses.Equal(valueobject.MoneyMap{"RON": decimal.NewFromInt(380)}) {
			t.Errorf("TotalExpenses = %v, want recomputed {RON:380}", out.Summary.TotalExpenses)
		}
	})
}
