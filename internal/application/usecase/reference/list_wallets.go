package reference

import (
	"context"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// ListWalletsUseCase fetches the wallet list on its own, for clients that
// only need to populate a wallet picker.
type ListWalletsUseCase struct {
	upstream adapter.UpstreamService
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(upstream adapter.UpstreamService) *ListWalletsUseCase {
	return &ListWalletsUseCase{upstream: upstream}
}

// Execute fetches the wallet reference list.
func (uc *ListWalletsUseCase) Execute(ctx context.Context) ([]entity.Wallet, error) {
	wallets, err := uc.upstream.FetchWallets(ctx)
	if err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch wallets",
			err,
		)
	}
	return wallets, nil
}
