// Package currency provides the currency label registry and money-map
// display formatting for the operations dashboard.
package currency

import (
	"sync/atomic"

	"github.com/opsboard/backend/internal/domain/entity"
)

// Default labels for the currencies the business handles day to day.
// Reference data fetched from upstream overlays these on rebuild.
var defaultLabels = map[string]string{
	"RON": "lei",
	"EUR": "€",
	"USD": "$",
}

// Registry maps currency codes to display labels. It is shared process-wide:
// a single writer rebuilds the table when reference data arrives while any
// number of readers resolve labels concurrently. Rebuild swaps a complete,
// immutable table, so readers observe either the previous table or the new
// one in full, never a mix.
type Registry struct {
	table atomic.Pointer[map[string]string]
}

// NewRegistry creates a registry seeded with the default labels.
func NewRegistry() *Registry {
	r := &Registry{}
	seed := cloneTable(defaultLabels)
	r.table.Store(&seed)
	return r
}

// Label returns the display label for code, or the code itself when no
// label is registered. It never returns an empty string.
func (r *Registry) Label(code string) string {
	table := *r.table.Load()
	if label, ok := table[code]; ok && label != "" {
		return label
	}
	return code
}

// Rebuild replaces the active table with defaults overlaid by entries;
// entries win on collision. The swap is atomic from the readers' viewpoint
// and the last completed rebuild wins under concurrent calls. Rebuilding
// with the same entries is idempotent.
func (r *Registry) Rebuild(entries []entity.CurrencyLabel) {
	table := cloneTable(defaultLabels)
	for _, e := range entries {
		if e.Code == "" {
			continue
		}
		table[e.Code] = e.Label
	}
	r.table.Store(&table)
}

func cloneTable(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
