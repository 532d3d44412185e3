package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/reference"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/integration/entrypoint/dto"
)

// ReferenceController handles the reference list endpoints: the combined
// /reference view plus the standalone wallet, category and currency lists.
type ReferenceController struct {
	listReferenceUseCase  *reference.ListReferenceUseCase
	listWalletsUseCase    *reference.ListWalletsUseCase
	listCategoriesUseCase *reference.ListCategoriesUseCase
	listCurrenciesUseCase *reference.ListCurrenciesUseCase
}

// NewReferenceController creates a new reference controller instance.
func NewReferenceController(
	listReferenceUseCase *reference.ListReferenceUseCase,
	listWalletsUseCase *reference.ListWalletsUseCase,
	listCategoriesUseCase *reference.ListCategoriesUseCase,
	listCurrenciesUseCase *reference.ListCurrenciesUseCase,
) *ReferenceController {
	return &ReferenceController{
		listReferenceUseCase:  listReferenceUseCase,
		listWalletsUseCase:    listWalletsUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
		listCurrenciesUseCase: listCurrenciesUseCase,
	}
}

// List handles GET /reference requests. It relays the upstream wallet,
// category and currency lists for the dashboard's filter pickers.
func (c *ReferenceController) List(ctx *gin.Context) {
	output, err := c.listReferenceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		referenceUnavailable(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReferenceResponse(output))
}

// ListWallets handles GET /wallets requests.
func (c *ReferenceController) ListWallets(ctx *gin.Context) {
	wallets, err := c.listWalletsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		referenceUnavailable(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.WalletListResponse{Wallets: dto.ToWalletResponses(wallets)})
}

// ListCategories handles GET /categories requests.
func (c *ReferenceController) ListCategories(ctx *gin.Context) {
	categories, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		referenceUnavailable(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: dto.ToCategoryResponses(categories)})
}

// ListCurrencies handles GET /currencies requests.
func (c *ReferenceController) ListCurrencies(ctx *gin.Context) {
	labels, err := c.listCurrenciesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		referenceUnavailable(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.CurrencyListResponse{Currencies: dto.ToCurrencyResponses(labels)})
}

func referenceUnavailable(ctx *gin.Context) {
	ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
		Error: "Failed to fetch reference data",
		Code:  string(domainerror.ErrCodeUpstreamUnavailable),
	})
}
