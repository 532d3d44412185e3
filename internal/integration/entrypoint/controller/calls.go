package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/calls"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/integration/entrypoint/dto"
)

// CallsController handles the call-statistics overview endpoint.
type CallsController struct {
	getOverviewUseCase *calls.GetOverviewUseCase
}

// NewCallsController creates a new calls controller instance.
func NewCallsController(getOverviewUseCase *calls.GetOverviewUseCase) *CallsController {
	return &CallsController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// GetOverview handles GET /calls/overview requests.
func (c *CallsController) GetOverview(ctx *gin.Context) {
	start, end, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), calls.GetOverviewInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		var callsErr *domainerror.CallsError
		if errors.As(err, &callsErr) && callsErr.Code != domainerror.ErrCodeCallsInternalError {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: callsErr.Message,
				Code:  string(callsErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to fetch call statistics",
			Code:  string(domainerror.ErrCodeCallsInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCallOverviewResponse(output))
}
