package currency

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/opsboard/backend/internal/domain/entity"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(NewRegistry())

	t.Run("single entry uses the default label", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{"RON": dec(t, "100")})
		if got != "100 lei" {
			t.Errorf("Format = %q, want %q", got, "100 lei")
		}
	})

	t.Run("entries join in ascending code order", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{
			"RON": dec(t, "100"),
			"EUR": dec(t, "50"),
		})
		if got != "50 € / 100 lei" {
			t.Errorf("Format = %q, want %q", got, "50 € / 100 lei")
		}
	})

	t.Run("zero entries are filtered out", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{
			"RON": decimal.Zero,
			"EUR": dec(t, "50"),
		})
		if strings.Contains(got, "lei") {
			t.Errorf("Format = %q, zero RON entry should be excluded", got)
		}
		if !strings.Contains(got, "50 €") {
			t.Errorf("Format = %q, want the EUR entry present", got)
		}
	})

	t.Run("fallback for empty, nil and all-zero maps", func(t *testing.T) {
		for name, m := range map[string]valueobject.MoneyMap{
			"empty":    valueobject.NewMoneyMap(),
			"nil":      nil,
			"all zero": {"RON": decimal.Zero},
		} {
			if got := f.Format(m); got != "0 lei" {
				t.Errorf("%s map: Format = %q, want %q", name, got, "0 lei")
			}
		}
	})

	t.Run("amounts use Romanian digit grouping", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{"RON": dec(t, "1234.56")})
		if got != "1.234,56 lei" {
			t.Errorf("Format = %q, want %q", got, "1.234,56 lei")
		}
	})
}

func TestFormatter_RegistryOverlay(t *testing.T) {
	r := NewRegistry()
	f := NewFormatter(r)

	r.Rebuild([]entity.CurrencyLabel{{Code: "RON", Label: "RON"}})

	t.Run("overlayed label is used for formatting", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{"RON": dec(t, "100")})
		if got != "100 RON" {
			t.Errorf("Format = %q, want %q", got, "100 RON")
		}
	})

	t.Run("default labels stay intact for other codes", func(t *testing.T) {
		got := f.Format(valueobject.MoneyMap{"EUR": dec(t, "50"), "USD": dec(t, "7")})
		if got != "50 € / 7 $" {
			t.Errorf("Format = %q, want %q", got, "50 € / 7 $")
		}
	})

	t.Run("fallback literal does not follow the overlay", func(t *testing.T) {
		if got := f.Format(nil); got != "0 lei" {
			t.Errorf("Format(nil) = %q, want %q", got, "0 lei")
		}
	})
}
