package currency

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/opsboard/backend/internal/domain/valueobject"
)

// zeroFallback is the literal rendered for empty, nil, or all-zero maps.
// It is intentionally independent of registry overlays.
const zeroFallback = "0 lei"

// entrySeparator joins per-currency entries in a formatted money map.
const entrySeparator = " / "

// Formatter renders MoneyMaps for display: one "<amount> <label>" entry per
// non-zero currency, ascending code order, locale-aware digit grouping.
type Formatter struct {
	registry *Registry
	printer  *message.Printer
}

// NewFormatter creates a formatter bound to a registry. The business runs in
// Romania, so amounts are grouped the Romanian way (1.234,56).
func NewFormatter(registry *Registry) *Formatter {
	return &Formatter{
		registry: registry,
		printer:  message.NewPrinter(language.Romanian),
	}
}

// Format renders m as "<amount> <label>" entries joined by " / ".
// Zero-valued entries are filtered out; a nil, empty, or all-zero map yields
// the literal "0 lei". Safe on nil input so partially loaded upstream
// responses never break rendering.
func (f *Formatter) Format(m valueobject.MoneyMap) string {
	if m.IsZero() {
		return zeroFallback
	}

	parts := make([]string, 0, len(m))
	for _, code := range m.Codes() {
		amount := m.Get(code)
		if amount.IsZero() {
			continue
		}
		value, _ := amount.Float64()
		parts = append(parts,
			f.printer.Sprintf("%v %s", number.Decimal(value, number.MaxFractionDigits(2)), f.registry.Label(code)))
	}
	return strings.Join(parts, entrySeparator)
}
