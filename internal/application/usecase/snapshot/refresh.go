// Package snapshot implements use cases for fetching and replacing the
// in-memory operational snapshot.
package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// RefreshOutput represents the output of refreshing the snapshot.
type RefreshOutput struct {
	Version    uuid.UUID
	ExerciseID int64
	FetchedAt  time.Time
}

// RefreshUseCase fetches a fresh snapshot from the upstream operations API
// and replaces the stored one wholesale. Readers keep seeing the previous
// snapshot until the new one is complete; a failed refresh leaves the stored
// snapshot untouched.
type RefreshUseCase struct {
	upstream  adapter.UpstreamService
	snapshots adapter.SnapshotRepository
	registry  *currency.Registry
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(
	upstream adapter.UpstreamService,
	snapshots adapter.SnapshotRepository,
	registry *currency.Registry,
) *RefreshUseCase {
	return &RefreshUseCase{
		upstream:  upstream,
		snapshots: snapshots,
		registry:  registry,
	}
}

// Execute fetches the active exercise, then fans out over the upstream
// endpoints that make up a snapshot. Any single failure aborts the whole
// refresh.
func (uc *RefreshUseCase) Execute(ctx context.Context) (*RefreshOutput, error) {
	exercise, err := uc.upstream.FetchCurrentExercise(ctx)
	if err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch current exercise",
			err,
		)
	}
	if exercise == nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeNoActiveExercise,
			"upstream reports no active exercise",
			domainerror.ErrNoActiveExercise,
		)
	}

	var (
		report    *entity.ExpenseReport
		balances  []entity.WalletBalance
		topUps    []entity.TopUp
		transfers []entity.Transfer
		labels    []entity.CurrencyLabel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = uc.upstream.FetchDailyReport(gctx, adapter.DailyReportQuery{ExerciseID: &exercise.ID})
		return err
	})
	g.Go(func() error {
		var err error
		balances, err = uc.upstream.FetchBalances(gctx, &exercise.ID)
		return err
	})
	g.Go(func() error {
		var err error
		topUps, err = uc.upstream.FetchTopUps(gctx, exercise.ID)
		return err
	})
	g.Go(func() error {
		var err error
		transfers, err = uc.upstream.FetchTransfers(gctx, exercise.ID)
		return err
	})
	g.Go(func() error {
		var err error
		labels, err = uc.upstream.FetchCurrencyLabels(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch snapshot data",
			err,
		)
	}

	// Labels first, so a reader of the new snapshot can never format with
	// a table older than the data it renders.
	uc.registry.Rebuild(labels)

	fresh := &entity.Snapshot{
		Version:   uuid.New(),
		Exercise:  exercise,
		Report:    report,
		Balances:  balances,
		TopUps:    topUps,
		Transfers: transfers,
		FetchedAt: time.Now(),
	}
	uc.snapshots.Replace(fresh)

	slog.InfoContext(ctx, "snapshot refreshed",
		"version", fresh.Version,
		"exercise_id", exercise.ID,
		"top_ups", len(topUps),
		"transfers", len(transfers),
		"balances", len(balances),
	)

	return &RefreshOutput{
		Version:    fresh.Version,
		ExerciseID: exercise.ID,
		FetchedAt:  fresh.FetchedAt,
	}, nil
}
