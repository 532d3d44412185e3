package entity

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot bundles everything fetched for the current exercise in one pass.
// Snapshots are ephemeral: a refresh builds a whole new one and replaces the
// previous wholesale; nothing mutates a snapshot after it is stored.
//
// Version changes on every refresh and keys all memoized results derived
// from the snapshot, so values computed from an older snapshot can never
// serve a newer one.
type Snapshot struct {
	Version   uuid.UUID
	Exercise  *Exercise
	Report    *ExpenseReport
	Balances  []WalletBalance
	TopUps    []TopUp
	Transfers []Transfer
	FetchedAt time.Time
}
