package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// ListMovementsInput represents the input for listing snapshot collections.
type ListMovementsInput struct {
	WalletID *int64
}

// ListMovementsOutput carries the snapshot's wallet-filtered collections for
// the standalone list endpoints.
type ListMovementsOutput struct {
	SnapshotVersion uuid.UUID
	FetchedAt       time.Time

	Balances  []entity.WalletBalance
	TopUps    []entity.TopUp
	Transfers []entity.Transfer
}

// ListMovementsUseCase serves balances, top-ups and transfers straight from
// the current snapshot. It reuses the summary's wallet filters but skips the
// folds, so a list request never computes or caches totals.
type ListMovementsUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(snapshots adapter.SnapshotRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{snapshots: snapshots}
}

// Execute returns the current snapshot's collections under input.WalletID.
func (uc *ListMovementsUseCase) Execute(_ context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
	snapshot := uc.snapshots.Current()
	if snapshot == nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeNoSnapshot,
			"no snapshot available, refresh first",
			domainerror.ErrNoSnapshot,
		)
	}

	return &ListMovementsOutput{
		SnapshotVersion: snapshot.Version,
		FetchedAt:       snapshot.FetchedAt,
		Balances:        BalancesByWallet(snapshot.Balances, input.WalletID),
		TopUps:          TopUpsByWallet(snapshot.TopUps, input.WalletID),
		Transfers:       TransfersByWallet(snapshot.Transfers, input.WalletID),
	}, nil
}
