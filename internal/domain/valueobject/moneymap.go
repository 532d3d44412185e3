// Package valueobject contains domain value objects for the operations dashboard.
package valueobject

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the business's home currency. Records arriving without
// a currency code are attributed to it.
const DefaultCurrency = "RON"

// MoneyMap accumulates amounts per currency code. Amounts under different
// codes are never combined; there is no conversion anywhere in the system.
//
// All operations are pure: they return new maps and never mutate receivers
// or arguments. A code carrying a zero amount is a valid entry and is
// retained by merges; only display formatting filters zeros out.
type MoneyMap map[string]decimal.Decimal

// NewMoneyMap returns an empty MoneyMap.
func NewMoneyMap() MoneyMap {
	return MoneyMap{}
}

// Clone returns a copy of the map. A nil receiver yields an empty map.
func (m MoneyMap) Clone() MoneyMap {
	out := make(MoneyMap, len(m))
	for code, amount := range m {
		out[code] = amount
	}
	return out
}

// Merge returns a new map where each code present in either operand holds
// the sum of both sides, treating absence as zero. Merge is commutative and
// associative, and merging with an empty or nil map is the identity.
func (m MoneyMap) Merge(other MoneyMap) MoneyMap {
	out := m.Clone()
	for code, amount := range other {
		out[code] = out[code].Add(amount)
	}
	return out
}

// Add returns a new map with amount accumulated under code. An empty code
// falls back to the home currency.
func (m MoneyMap) Add(code string, amount decimal.Decimal) MoneyMap {
	if code == "" {
		code = DefaultCurrency
	}
	out := m.Clone()
	out[code] = out[code].Add(amount)
	return out
}

// Get returns the amount for code, zero when absent.
func (m MoneyMap) Get(code string) decimal.Decimal {
	return m[code]
}

// Codes returns the currency codes in ascending order. Go maps have no
// stable iteration order, so every consumer that needs determinism
// (formatting, DTO conversion, tests) goes through this.
func (m MoneyMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsZero reports whether the map is nil, empty, or holds only zero amounts.
func (m MoneyMap) IsZero() bool {
	for _, amount := range m {
		if !amount.IsZero() {
			return false
		}
	}
	return true
}

// Equal reports value equality, treating absent codes as zero on both sides.
// Re-running an aggregation over identical inputs must yield Equal results.
func (m MoneyMap) Equal(other MoneyMap) bool {
	for code, amount := range m {
		if !amount.Equal(other[code]) {
			return false
		}
	}
	for code, amount := range other {
		if _, seen := m[code]; !seen && !amount.IsZero() {
			return false
		}
	}
	return true
}
