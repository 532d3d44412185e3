package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// registerUpstreamSteps registers steps that seed the stub upstream.
func registerUpstreamSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^upstream responds to "([^"]*)" with:$`, upstreamRespondsToWith)
	ctx.Step(`^upstream responds to "([^"]*)" with status (\d+)$`, upstreamRespondsToWithStatus)
	ctx.Step(`^upstream has a standard snapshot$`, upstreamHasAStandardSnapshot)
	ctx.Step(`^upstream is unreachable$`, upstreamIsUnreachable)
}

func upstreamRespondsToWith(ctx context.Context, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.upstream.SetJSON(path, body.Content)
	return nil
}

func upstreamRespondsToWithStatus(ctx context.Context, path string, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.upstream.SetStatus(path, status, `{"detail": "error"}`)
	return nil
}

func upstreamIsUnreachable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.upstream.Close()
	return nil
}

// upstreamHasAStandardSnapshot seeds the fixtures most scenarios share: an
// active exercise with top-ups in two currencies, one transfer, balances and
// a two-category report.
func upstreamHasAStandardSnapshot(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	tc.upstream.SetJSON("/api/exercitii/curent",
		`{"id": 7, "data": "2026-03-14", "activ": true, "deschis_la": "2026-03-14T08:00:00Z"}`)
	tc.upstream.SetJSON("/api/rapoarte/zilnic", `{
		"exercitiu_id": 7,
		"data": "2026-03-14",
		"activ": true,
		"categorii": [
			{"categorie_id": 10, "nume": "Marfa", "culoare": "#FF0000",
			 "total_platit": {"RON": 300}, "total_neplatit": {"RON": 45}, "total": {"RON": 345}},
			{"categorie_id": 20, "nume": "Utilitati", "culoare": "#00FF00",
			 "total_platit": {"RON": 80}, "total_neplatit": {}, "total": {"RON": 80}}
		],
		"total_platit": {"RON": 380},
		"total_neplatit": {"RON": 45},
		"total_sold": {"RON": 1000}
	}`)
	tc.upstream.SetJSON("/api/portofele/solduri", `[
		{"portofel_id": 1, "nume": "Casa", "sold_total": {"RON": 900}, "sold_zi_curenta": {"RON": 120}},
		{"portofel_id": 2, "nume": "Banca", "sold_total": {"EUR": 40}, "sold_zi_curenta": {}}
	]`)
	tc.upstream.SetJSON("/api/alimentari", `[
		{"id": 1, "portofel_id": 1, "suma": 100, "moneda": "RON"},
		{"id": 2, "portofel_id": 2, "suma": 50, "moneda": "EUR"}
	]`)
	tc.upstream.SetJSON("/api/transferuri", `[
		{"id": 1, "portofel_sursa_id": 1, "portofel_dest_id": 2,
		 "suma": 100, "moneda": "RON", "suma_dest": 20, "moneda_dest": "EUR"}
	]`)
	tc.upstream.SetJSON("/api/monede",
		`[{"cod": "RON", "eticheta": "lei"}, {"cod": "EUR", "eticheta": "€"}]`)
	return nil
}
