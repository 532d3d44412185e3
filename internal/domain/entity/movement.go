package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopUp (alimentare) is an inbound funding transaction into a wallet.
type TopUp struct {
	ID           int64
	WalletID     int64
	Amount       decimal.Decimal
	CurrencyCode string
	Comment      string
	CreatedAt    time.Time
}

// Transfer moves funds between two wallets. When DestCurrencyCode is set the
// transfer is cross-currency: the destination side carries its own amount,
// which is never derived from the source side and never summed into totals.
type Transfer struct {
	ID               int64
	SourceWalletID   int64
	DestWalletID     int64
	Amount           decimal.Decimal
	CurrencyCode     string
	DestAmount       *decimal.Decimal
	DestCurrencyCode string
	Comment          string
	CreatedAt        time.Time
}

// CrossCurrency reports whether the destination side is denominated in a
// different currency than the source side.
func (t Transfer) CrossCurrency() bool {
	return t.DestCurrencyCode != "" && t.DestCurrencyCode != t.CurrencyCode
}

// Touches reports whether the transfer involves walletID on either side.
func (t Transfer) Touches(walletID int64) bool {
	return t.SourceWalletID == walletID || t.DestWalletID == walletID
}
