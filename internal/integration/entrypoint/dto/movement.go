package dto

import (
	"time"

	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/domain/entity"
)

// TopUpListResponse represents the response for the standalone top-up list
// endpoint.
type TopUpListResponse struct {
	SnapshotVersion string          `json:"snapshot_version"`
	TopUps          []TopUpResponse `json:"top_ups"`
}

// TransferListResponse represents the response for the standalone transfer
// list endpoint.
type TransferListResponse struct {
	SnapshotVersion string             `json:"snapshot_version"`
	Transfers       []TransferResponse `json:"transfers"`
}

// ToTopUpListResponse converts a ListMovementsOutput to the top-up list DTO.
func ToTopUpListResponse(output *ledger.ListMovementsOutput) TopUpListResponse {
	return TopUpListResponse{
		SnapshotVersion: output.SnapshotVersion.String(),
		TopUps:          ToTopUpResponses(output.TopUps),
	}
}

// ToTransferListResponse converts a ListMovementsOutput to the transfer list DTO.
func ToTransferListResponse(output *ledger.ListMovementsOutput) TransferListResponse {
	return TransferListResponse{
		SnapshotVersion: output.SnapshotVersion.String(),
		Transfers:       ToTransferResponses(output.Transfers),
	}
}

// TopUpResponse represents one wallet top-up in API responses.
type TopUpResponse struct {
	ID           int64   `json:"id"`
	WalletID     int64   `json:"wallet_id"`
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
	Comment      string  `json:"comment,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// TransferResponse represents one wallet-to-wallet transfer. Cross-currency
// transfers carry the destination side verbatim; the two sides are displayed
// together but never summed into one another.
type TransferResponse struct {
	ID               int64    `json:"id"`
	SourceWalletID   int64    `json:"source_wallet_id"`
	DestWalletID     int64    `json:"dest_wallet_id"`
	Amount           float64  `json:"amount"`
	CurrencyCode     string   `json:"currency_code"`
	DestAmount       *float64 `json:"dest_amount,omitempty"`
	DestCurrencyCode string   `json:"dest_currency_code,omitempty"`
	CrossCurrency    bool     `json:"cross_currency"`
	Comment          string   `json:"comment,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

// ToTopUpResponses converts top-up entities to DTOs.
func ToTopUpResponses(topUps []entity.TopUp) []TopUpResponse {
	responses := make([]TopUpResponse, len(topUps))
	for i, t := range topUps {
		amount, _ := t.Amount.Float64()
		responses[i] = TopUpResponse{
			ID:           t.ID,
			WalletID:     t.WalletID,
			Amount:       amount,
			CurrencyCode: t.CurrencyCode,
			Comment:      t.Comment,
		}
		if !t.CreatedAt.IsZero() {
			responses[i].CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
	}
	return responses
}

// ToTransferResponses converts transfer entities to DTOs.
func ToTransferResponses(transfers []entity.Transfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		amount, _ := t.Amount.Float64()
		responses[i] = TransferResponse{
			ID:               t.ID,
			SourceWalletID:   t.SourceWalletID,
			DestWalletID:     t.DestWalletID,
			Amount:           amount,
			CurrencyCode:     t.CurrencyCode,
			DestCurrencyCode: t.DestCurrencyCode,
			CrossCurrency:    t.CrossCurrency(),
			Comment:          t.Comment,
		}
		if t.DestAmount != nil {
			destAmount, _ := t.DestAmount.Float64()
			responses[i].DestAmount = &destAmount
		}
		if !t.CreatedAt.IsZero() {
			responses[i].CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
	}
	return responses
}
