package dto

import (
	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/domain/entity"
)

// BalanceListResponse represents the response for the standalone balance
// list endpoint.
type BalanceListResponse struct {
	SnapshotVersion string                  `json:"snapshot_version"`
	Balances        []WalletBalanceResponse `json:"balances"`
}

// ToBalanceListResponse converts a ListMovementsOutput to the balance list DTO.
func ToBalanceListResponse(output *ledger.ListMovementsOutput) BalanceListResponse {
	return BalanceListResponse{
		SnapshotVersion: output.SnapshotVersion.String(),
		Balances:        ToWalletBalanceResponses(output.Balances),
	}
}

// WalletBalanceResponse represents one wallet's balances in API responses.
type WalletBalanceResponse struct {
	WalletID     int64              `json:"wallet_id"`
	WalletName   string             `json:"wallet_name"`
	TotalBalance map[string]float64 `json:"total_balance"`
	TodayBalance map[string]float64 `json:"today_balance"`
}

// ToWalletBalanceResponses converts wallet balance entities to DTOs.
func ToWalletBalanceResponses(balances []entity.WalletBalance) []WalletBalanceResponse {
	responses := make([]WalletBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = WalletBalanceResponse{
			WalletID:     b.WalletID,
			WalletName:   b.WalletName,
			TotalBalance: toAmounts(b.TotalBalance),
			TodayBalance: toAmounts(b.TodayBalance),
		}
	}
	return responses
}
