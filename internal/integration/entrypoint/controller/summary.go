// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/ledger"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the dashboard summary endpoint.
type SummaryController struct {
	getSummaryUseCase *ledger.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getSummaryUseCase *ledger.GetSummaryUseCase) *SummaryController {
	return &SummaryController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /summary requests. wallet_id and category_id are
// optional; an unset filter means all records.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	filter := ledger.Filter{}

	if raw := ctx.Query("wallet_id"); raw != "" {
		walletID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidWalletID.Error(),
				Code:  string(domainerror.ErrCodeInvalidWalletID),
			})
			return
		}
		filter.WalletID = &walletID
	}

	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidCategoryID.Error(),
				Code:  string(domainerror.ErrCodeInvalidCategoryID),
			})
			return
		}
		filter.CategoryID = &categoryID
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), ledger.GetSummaryInput{Filter: filter})
	if err != nil {
		if errors.Is(err, domainerror.ErrNoSnapshot) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "No snapshot available, refresh first",
				Code:  string(domainerror.ErrCodeNoSnapshot),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
			Code:  string(domainerror.ErrCodeSummaryInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
