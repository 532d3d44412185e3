package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/snapshot"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/integration/entrypoint/dto"
)

// SnapshotController handles the snapshot refresh endpoint.
type SnapshotController struct {
	refreshUseCase *snapshot.RefreshUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(refreshUseCase *snapshot.RefreshUseCase) *SnapshotController {
	return &SnapshotController{
		refreshUseCase: refreshUseCase,
	}
}

// Refresh handles POST /snapshot/refresh requests. It pulls a fresh snapshot
// from the upstream operations API and swaps it in atomically.
func (c *SnapshotController) Refresh(ctx *gin.Context) {
	output, err := c.refreshUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domainerror.ErrNoActiveExercise) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "Upstream reports no active exercise",
				Code:  string(domainerror.ErrCodeNoActiveExercise),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to refresh snapshot",
			Code:  string(domainerror.ErrCodeUpstreamUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRefreshResponse(output))
}
