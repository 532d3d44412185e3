package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMoneyMap_Merge(t *testing.T) {
	a := MoneyMap{"RON": dec("100"), "EUR": dec("50")}
	b := MoneyMap{"RON": dec("25.50"), "USD": dec("10")}

	t.Run("sums per code and keeps codes separate", func(t *testing.T) {
		got := a.Merge(b)

		if !got.Get("RON").Equal(dec("125.50")) {
			t.Errorf("RON = %s, want 125.50", got.Get("RON"))
		}
		if !got.Get("EUR").Equal(dec("50")) {
			t.Errorf("EUR = %s, want 50", got.Get("EUR"))
		}
		if !got.Get("USD").Equal(dec("10")) {
			t.Errorf("USD = %s, want 10", got.Get("USD"))
		}
		if len(got) != 3 {
			t.Errorf("expected 3 codes, got %d", len(got))
		}
	})

	t.Run("is commutative", func(t *testing.T) {
		if !a.Merge(b).Equal(b.Merge(a)) {
			t.Error("merge(a,b) != merge(b,a)")
		}
	})

	t.Run("is associative", func(t *testing.T) {
		c := MoneyMap{"EUR": dec("1.25")}
		left := a.Merge(b).Merge(c)
		right := a.Merge(b.Merge(c))
		if !left.Equal(right) {
			t.Error("merge is not associative")
		}
	})

	t.Run("empty map is the identity", func(t *testing.T) {
		if !a.Merge(NewMoneyMap()).Equal(a) {
			t.Error("merge with empty map changed the result")
		}
		if !a.Merge(nil).Equal(a) {
			t.Error("merge with nil map changed the result")
		}
	})

	t.Run("does not mutate operands", func(t *testing.T) {
		before := a.Clone()
		_ = a.Merge(b)
		if !a.Equal(before) {
			t.Error("merge mutated its receiver")
		}
	})

	t.Run("retains explicit zero entries", func(t *testing.T) {
		got := MoneyMap{"RON": decimal.Zero}.Merge(MoneyMap{"EUR": dec("5")})
		if _, ok := got["RON"]; !ok {
			t.Error("zero-valued RON entry was dropped by merge")
		}
	})
}

func TestMoneyMap_Add(t *testing.T) {
	t.Run("accumulates under the given code", func(t *testing.T) {
		got := NewMoneyMap().Add("EUR", dec("20")).Add("EUR", dec("5"))
		if !got.Get("EUR").Equal(dec("25")) {
			t.Errorf("EUR = %s, want 25", got.Get("EUR"))
		}
	})

	t.Run("empty code defaults to RON", func(t *testing.T) {
		got := NewMoneyMap().Add("", dec("100"))
		if !got.Get("RON").Equal(dec("100")) {
			t.Errorf("RON = %s, want 100", got.Get("RON"))
		}
	})
}

func TestMoneyMap_Codes(t *testing.T) {
	m := MoneyMap{"USD": dec("1"), "EUR": dec("2"), "RON": dec("3")}
	got := m.Codes()
	want := []string{"EUR", "RON", "USD"}
	if len(got) != len(want) {
		t.Fatalf("got %d codes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("codes[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMoneyMap_IsZero(t *testing.T) {
	tests := []struct {
		name string
		m    MoneyMap
		want bool
	}{
		{"nil map", nil, true},
		{"empty map", NewMoneyMap(), true},
		{"only zero entries", MoneyMap{"RON": decimal.Zero}, true},
		{"non-zero entry", MoneyMap{"RON": dec("0.01")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoneyMap_Equal(t *testing.T) {
	t.Run("absent code equals explicit zero", func(t *testing.T) {
		a := MoneyMap{"RON": dec("10"), "EUR": decimal.Zero}
		b := MoneyMap{"RON": dec("10")}
		if !a.Equal(b) || !b.Equal(a) {
			t.Error("explicit zero should equal absence")
		}
	})

	t.Run("differing amounts are unequal", func(t *testing.T) {
		a := MoneyMap{"RON": dec("10")}
		b := MoneyMap{"RON": dec("10.01")}
		if a.Equal(b) {
			t.Error("expected maps to differ")
		}
	})
}
