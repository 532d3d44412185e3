package dto

import (
	"github.com/opsboard/backend/internal/application/usecase/reference"
	"github.com/opsboard/backend/internal/domain/entity"
)

// WalletResponse represents one wallet in the reference lists.
type WalletResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
}

// CategoryResponse represents one expense category in the reference lists.
type CategoryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	AffectsBalance bool   `json:"affects_balance"`
	Order          int    `json:"order"`
	Active         bool   `json:"active"`
}

// CurrencyResponse represents one currency's display label.
type CurrencyResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// WalletListResponse represents the response for the standalone wallet list.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// CategoryListResponse represents the response for the standalone category
// list.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CurrencyListResponse represents the response for the standalone currency
// list.
type CurrencyListResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ReferenceResponse represents the response for the reference API.
type ReferenceResponse struct {
	Wallets    []WalletResponse   `json:"wallets"`
	Categories []CategoryResponse `json:"categories"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToReferenceResponse converts a ListReferenceOutput to its DTO.
func ToReferenceResponse(output *reference.ListReferenceOutput) ReferenceResponse {
	return ReferenceResponse{
		Wallets:    ToWalletResponses(output.Wallets),
		Categories: ToCategoryResponses(output.Categories),
		Currencies: ToCurrencyResponses(output.Currencies),
	}
}

// ToWalletResponses converts wallet entities to DTOs.
func ToWalletResponses(wallets []entity.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		responses[i] = WalletResponse{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
			Order:       w.Order,
			Active:      w.Active,
		}
	}
	return responses
}

// ToCategoryResponses converts category entities to DTOs.
func ToCategoryResponses(categories []entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{
			ID:             c.ID,
			Name:           c.Name,
			Color:          c.Color,
			AffectsBalance: c.AffectsBalance,
			Order:          c.Order,
			Active:         c.Active,
		}
	}
	return responses
}

// ToCurrencyResponses converts currency label entities to DTOs.
func ToCurrencyResponses(labels []entity.CurrencyLabel) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(labels))
	for i, l := range labels {
		responses[i] = CurrencyResponse{Code: l.Code, Label: l.Label}
	}
	return responses
}
