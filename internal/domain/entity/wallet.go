package entity

import "github.com/opsboard/backend/internal/domain/valueobject"

// Wallet is a cash or account-like holding bucket, fetched from the upstream
// reference list for filter selectors.
type Wallet struct {
	ID          int64
	Name        string
	Description string
	Order       int
	Active      bool
}

// WalletBalance is a wallet's multi-currency balance snapshot: the running
// total and the current day's movement.
type WalletBalance struct {
	WalletID     int64
	WalletName   string
	TotalBalance valueobject.MoneyMap
	TodayBalance valueobject.MoneyMap
}
