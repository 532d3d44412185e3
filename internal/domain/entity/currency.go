// Package entity defines the core business entities for the domain layer.
package entity

// CurrencyLabel pairs a currency code with its display label, as delivered
// by the upstream reference list.
type CurrencyLabel struct {
	Code  string
	Label string
}
