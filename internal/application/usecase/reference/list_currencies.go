package reference

import (
	"context"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// ListCurrenciesUseCase fetches the currency label list on its own. The
// labels it returns are the same ones a snapshot refresh feeds into the
// registry; serving them here does not touch the registry.
type ListCurrenciesUseCase struct {
	upstream adapter.UpstreamService
}

// NewListCurrenciesUseCase creates a new ListCurrenciesUseCase instance.
func NewListCurrenciesUseCase(upstream adapter.UpstreamService) *ListCurrenciesUseCase {
	return &ListCurrenciesUseCase{upstream: upstream}
}

// Execute fetches the currency label reference list.
func (uc *ListCurrenciesUseCase) Execute(ctx context.Context) ([]entity.CurrencyLabel, error) {
	labels, err := uc.upstream.FetchCurrencyLabels(ctx)
	if err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch currency labels",
			err,
		)
	}
	return labels, nil
}
