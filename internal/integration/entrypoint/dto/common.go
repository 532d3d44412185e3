// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/opsboard/backend/internal/domain/valueobject"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MoneyResponse carries a per-currency amount map plus its display string.
type MoneyResponse struct {
	Amounts   map[string]float64 `json:"amounts"`
	Formatted string             `json:"formatted"`
}

// ToMoneyResponse converts a money map and its rendered form to a DTO.
func ToMoneyResponse(m valueobject.MoneyMap, formatted string) MoneyResponse {
	return MoneyResponse{
		Amounts:   toAmounts(m),
		Formatted: formatted,
	}
}

// toAmounts converts a money map to plain float64 values for JSON. A nil
// map becomes an empty object rather than null.
func toAmounts(m valueobject.MoneyMap) map[string]float64 {
	amounts := make(map[string]float64, len(m))
	for code, value := range m {
		f, _ := value.Float64()
		amounts[code] = f
	}
	return amounts
}
