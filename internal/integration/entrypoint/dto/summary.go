package dto

import (
	"time"

	"github.com/opsboard/backend/internal/application/usecase/ledger"
)

// SummaryResponse represents the response for the dashboard summary API.
type SummaryResponse struct {
	SnapshotVersion string            `json:"snapshot_version"`
	FetchedAt       string            `json:"fetched_at"`
	Exercise        *ExerciseResponse `json:"exercise,omitempty"`

	TotalExpenses  MoneyResponse `json:"total_expenses"`
	TotalUnpaid    MoneyResponse `json:"total_unpaid"`
	TotalTopUps    MoneyResponse `json:"total_top_ups"`
	TotalBalances  MoneyResponse `json:"total_balances"`
	TotalTransfers MoneyResponse `json:"total_transfers"`

	Report    *ReportResponse         `json:"report,omitempty"`
	Balances  []WalletBalanceResponse `json:"balances"`
	TopUps    []TopUpResponse         `json:"top_ups"`
	Transfers []TransferResponse      `json:"transfers"`
}

// ExerciseResponse represents one daily exercise in API responses.
type ExerciseResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Active   bool   `json:"active"`
	OpenedAt string `json:"opened_at,omitempty"`
	ClosedAt string `json:"closed_at,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *ledger.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		SnapshotVersion: output.SnapshotVersion.String(),
		FetchedAt:       output.FetchedAt.UTC().Format(time.RFC3339),

		TotalExpenses:  ToMoneyResponse(output.Summary.TotalExpenses, output.Formatted.TotalExpenses),
		TotalUnpaid:    ToMoneyResponse(output.Summary.TotalUnpaid, output.Formatted.TotalUnpaid),
		TotalTopUps:    ToMoneyResponse(output.Summary.TotalTopUps, output.Formatted.TotalTopUps),
		TotalBalances:  ToMoneyResponse(output.Summary.TotalBalances, output.Formatted.TotalBalances),
		TotalTransfers: ToMoneyResponse(output.Summary.TotalTransfers, output.Formatted.TotalTransfers),

		Balances:  ToWalletBalanceResponses(output.Balances),
		TopUps:    ToTopUpResponses(output.TopUps),
		Transfers: ToTransferResponses(output.Transfers),
	}
	if output.Exercise != nil {
		exercise := toExerciseResponse(output.Exercise)
		response.Exercise = &exercise
	}
	if output.Report != nil {
		report := toReportResponse(output.Report)
		response.Report = &report
	}
	return response
}
