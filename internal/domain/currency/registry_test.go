package currency

import (
	"fmt"
	"sync"
	"testing"

	"github.com/opsboard/backend/internal/domain/entity"
)

func TestRegistry_Label(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		code string
		want string
	}{
		{"RON", "lei"},
		{"EUR", "€"},
		{"USD", "$"},
		{"GBP", "GBP"}, // unknown codes pass through unchanged
		{"", ""},
	}
	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			if got := r.Label(tt.code); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestRegistry_Rebuild(t *testing.T) {
	t.Run("overlay entries win over defaults", func(t *testing.T) {
		r := NewRegistry()
		r.Rebuild([]entity.CurrencyLabel{{Code: "RON", Label: "RON"}})

		if got := r.Label("RON"); got != "RON" {
			t.Errorf("Label(RON) = %q, want overlay %q", got, "RON")
		}
		// Untouched defaults survive the rebuild.
		if got := r.Label("EUR"); got != "€" {
			t.Errorf("Label(EUR) = %q, want default %q", got, "€")
		}
		if got := r.Label("USD"); got != "$" {
			t.Errorf("Label(USD) = %q, want default %q", got, "$")
		}
	})

	t.Run("rebuild replaces the previous overlay wholesale", func(t *testing.T) {
		r := NewRegistry()
		r.Rebuild([]entity.CurrencyLabel{{Code: "GBP", Label: "£"}})
		r.Rebuild([]entity.CurrencyLabel{{Code: "CHF", Label: "Fr"}})

		if got := r.Label("GBP"); got != "GBP" {
			t.Errorf("stale GBP overlay survived a full rebuild: %q", got)
		}
		if got := r.Label("CHF"); got != "Fr" {
			t.Errorf("Label(CHF) = %q, want %q", got, "Fr")
		}
	})

	t.Run("is idempotent for identical input", func(t *testing.T) {
		r := NewRegistry()
		entries := []entity.CurrencyLabel{{Code: "RON", Label: "RON"}}
		r.Rebuild(entries)
		r.Rebuild(entries)
		if got := r.Label("RON"); got != "RON" {
			t.Errorf("Label(RON) = %q after repeated rebuild", got)
		}
	})

	t.Run("entries with empty codes are ignored", func(t *testing.T) {
		r := NewRegistry()
		r.Rebuild([]entity.CurrencyLabel{{Code: "", Label: "??"}})
		if got := r.Label(""); got != "" {
			t.Errorf("Label(\"\") = %q, want passthrough", got)
		}
	})
}

func TestRegistry_ConcurrentRebuilds(t *testing.T) {
	r := NewRegistry()

	// Hammer rebuilds and reads together; run with -race. Every read must
	// resolve against some complete table, and once writers finish the
	// final table reflects exactly one rebuild.
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if got := r.Label("RON"); got == "" {
					t.Error("Label returned an empty string during rebuild")
					return
				}
				_ = r.Label("EUR")
			}
		}()
	}

	for i := 0; i < 500; i++ {
		tag := fmt.Sprintf("v%d", i)
		r.Rebuild([]entity.CurrencyLabel{
			{Code: "RON", Label: tag},
			{Code: "EUR", Label: tag},
		})
	}
	close(stop)
	wg.Wait()

	if r.Label("RON") != "v499" || r.Label("EUR") != "v499" {
		t.Errorf("final table mixes rebuilds: RON=%q EUR=%q", r.Label("RON"), r.Label("EUR"))
	}
}
