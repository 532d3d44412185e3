// Package reference implements the use case for the dashboard's reference
// lists: wallets, categories and currency labels. All three are
// upstream-owned; this service only relays them.
package reference

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// ListReferenceOutput represents the output of listing reference data.
type ListReferenceOutput struct {
	Wallets    []entity.Wallet
	Categories []entity.Category
	Currencies []entity.CurrencyLabel
}

// ListReferenceUseCase fetches the three reference lists in one call so the
// dashboard can populate its filter pickers.
type ListReferenceUseCase struct {
	upstream adapter.UpstreamService
}

// NewListReferenceUseCase creates a new ListReferenceUseCase instance.
func NewListReferenceUseCase(upstream adapter.UpstreamService) *ListReferenceUseCase {
	return &ListReferenceUseCase{upstream: upstream}
}

// Execute fetches wallets, categories and currency labels concurrently.
func (uc *ListReferenceUseCase) Execute(ctx context.Context) (*ListReferenceOutput, error) {
	out := &ListReferenceOutput{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Wallets, err = uc.upstream.FetchWallets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.Categories, err = uc.upstream.FetchCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.Currencies, err = uc.upstream.FetchCurrencyLabels(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch reference data",
			err,
		)
	}
	return out, nil
}
