package reference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

type stubUpstream struct {
	wallets    []entity.Wallet
	categories []entity.Category
	labels     []entity.CurrencyLabel

	walletsErr    error
	categoriesErr error
	labelsErr     error
}

func (s *stubUpstream) FetchCurrentExercise(context.Context) (*entity.Exercise, error) {
	return nil, nil
}

func (s *stubUpstream) FetchDailyReport(context.Context, adapter.DailyReportQuery) (*entity.ExpenseReport, error) {
	return nil, nil
}

func (s *stubUpstream) FetchPeriodReports(context.Context, time.Time, time.Time) ([]entity.ExpenseReport, error) {
	return nil, nil
}

func (s *stubUpstream) FetchBalances(context.Context, *int64) ([]entity.WalletBalance, error) {
	return nil, nil
}

func (s *stubUpstream) FetchTopUps(context.Context, int64) ([]entity.TopUp, error) {
	return nil, nil
}

func (s *stubUpstream) FetchTransfers(context.Context, int64) ([]entity.Transfer, error) {
	return nil, nil
}

func (s *stubUpstream) FetchWallets(context.Context) ([]entity.Wallet, error) {
	return s.wallets, s.walletsErr
}

func (s *stubUpstream) FetchCategories(context.Context) ([]entity.Category, error) {
	return s.categories, s.categoriesErr
}

func (s *stubUpstream) FetchCurrencyLabels(context.Context) ([]entity.CurrencyLabel, error) {
	return s.labels, s.labelsErr
}

func (s *stubUpstream) FetchCallDays(context.Context, time.Time, time.Time) ([]entity.CallDay, error) {
	return nil, nil
}

func referenceUpstream() *stubUpstream {
	return &stubUpstream{
		wallets:    []entity.Wallet{{ID: 1, Name: "Casa"}, {ID: 2, Name: "Banca"}},
		categories: []entity.Category{{ID: 10, Name: "Marfa"}},
		labels:     []entity.CurrencyLabel{{Code: "RON", Label: "lei"}},
	}
}

func TestListReferenceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all three lists", func(t *testing.T) {
		uc := NewListReferenceUseCase(referenceUpstream())
		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Wallets) != 2 || len(out.Categories) != 1 || len(out.Currencies) != 1 {
			t.Errorf("got %d wallets, %d categories, %d currencies, want 2/1/1",
				len(out.Wallets), len(out.Categories), len(out.Currencies))
		}
	})

	t.Run("any list failing fails the whole call with a coded error", func(t *testing.T) {
		upstream := referenceUpstream()
		upstream.categoriesErr = errors.New("connection refused")

		uc := NewListReferenceUseCase(upstream)
		_, err := uc.Execute(ctx)
		if err == nil {
			t.Fatal("expected an error when one list is unavailable")
		}
		var snapErr *domainerror.SnapshotError
		if !errors.As(err, &snapErr) || snapErr.Code != domainerror.ErrCodeUpstreamUnavailable {
			t.Errorf("err = %v, want SNP upstream-unavailable code", err)
		}
	})
}

func TestListSectionUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("wallets", func(t *testing.T) {
		uc := NewListWalletsUseCase(referenceUpstream())
		wallets, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(wallets) != 2 || wallets[0].Name != "Casa" {
			t.Errorf("wallets = %+v, want Casa and Banca", wallets)
		}
	})

	t.Run("categories", func(t *testing.T) {
		uc := NewListCategoriesUseCase(referenceUpstream())
		categories, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(categories) != 1 || categories[0].Name != "Marfa" {
			t.Errorf("categories = %+v, want Marfa", categories)
		}
	})

	t.Run("currencies", func(t *testing.T) {
		uc := NewListCurrenciesUseCase(referenceUpstream())
		labels, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(labels) != 1 || labels[0].Label != "lei" {
			t.Errorf("labels = %+v, want RON lei", labels)
		}
	})

	t.Run("currencies fetch failure wraps the upstream error", func(t *testing.T) {
		upstream := referenceUpstream()
		upstream.labelsErr = errors.New("connection refused")

		uc := NewListCurrenciesUseCase(upstream)
		if _, err := uc.Execute(ctx); err == nil {
			t.Fatal("expected an error when upstream is unavailable")
		}
	})
}
