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

// MovementsController handles the standalone snapshot list endpoints:
// balances, top-ups and transfers.
type MovementsController struct {
	listMovementsUseCase *ledger.ListMovementsUseCase
}

// NewMovementsController creates a new movements controller instance.
func NewMovementsController(listMovementsUseCase *ledger.ListMovementsUseCase) *MovementsController {
	return &MovementsController{
		listMovementsUseCase: listMovementsUseCase,
	}
}

// GetBalances handles GET /balances requests.
func (c *MovementsController) GetBalances(ctx *gin.Context) {
	output, ok := c.list(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBalanceListResponse(output))
}

// GetTopUps handles GET /topups requests.
func (c *MovementsController) GetTopUps(ctx *gin.Context) {
	output, ok := c.list(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTopUpListResponse(output))
}

// GetTransfers handles GET /transfers requests. A transfer is listed when
// either of its sides matches the wallet filter.
func (c *MovementsController) GetTransfers(ctx *gin.Context) {
	output, ok := c.list(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransferListResponse(output))
}

// list parses the optional wallet_id filter and runs the use case; when it
// returns ok=false the error response has already been written.
func (c *MovementsController) list(ctx *gin.Context) (*ledger.ListMovementsOutput, bool) {
	input := ledger.ListMovementsInput{}

	if raw := ctx.Query("wallet_id"); raw != "" {
		walletID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidWalletID.Error(),
				Code:  string(domainerror.ErrCodeInvalidWalletID),
			})
			return nil, false
		}
		input.WalletID = &walletID
	}

	output, err := c.listMovementsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoSnapshot) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "No snapshot available, refresh first",
				Code:  string(domainerror.ErrCodeNoSnapshot),
			})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list snapshot records",
			Code:  string(domainerror.ErrCodeSummaryInternalError),
		})
		return nil, false
	}
	return output, true
}
