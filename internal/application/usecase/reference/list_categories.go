package reference

import (
	"context"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// ListCategoriesUseCase fetches the expense category list on its own.
type ListCategoriesUseCase struct {
	upstream adapter.UpstreamService
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(upstream adapter.UpstreamService) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{upstream: upstream}
}

// Execute fetches the category reference list.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]entity.Category, error) {
	categories, err := uc.upstream.FetchCategories(ctx)
	if err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeUpstreamUnavailable,
			"failed to fetch categories",
			err,
		)
	}
	return categories, nil
}
