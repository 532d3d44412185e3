// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
	domainerror "github.com/opsboard/backend/internal/domain/error"
)

// UpstreamClient implements adapter.UpstreamService against the operations
// API over HTTP. It is read-only: every call is a GET.
type UpstreamClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewUpstreamClient creates a new upstream client instance.
func NewUpstreamClient(baseURL, apiToken string, timeout time.Duration) *UpstreamClient {
	return &UpstreamClient{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: timeout},
	}
}

// Ping checks upstream reachability for health reporting.
func (c *UpstreamClient) Ping(ctx context.Context) error {
	var dto exerciseDTO
	return c.getJSON(ctx, "/api/exercitii/curent", nil, &dto)
}

// FetchCurrentExercise returns the currently active exercise, or nil when
// upstream has none open.
func (c *UpstreamClient) FetchCurrentExercise(ctx context.Context) (*entity.Exercise, error) {
	var dto exerciseDTO
	if err := c.getJSON(ctx, "/api/exercitii/curent", nil, &dto); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if dto.ID == 0 {
		return nil, nil
	}
	return dto.toEntity(), nil
}

// FetchDailyReport returns the expense report for one day.
func (c *UpstreamClient) FetchDailyReport(ctx context.Context, query adapter.DailyReportQuery) (*entity.ExpenseReport, error) {
	params := url.Values{}
	if query.ExerciseID != nil {
		params.Set("exercitiu_id", strconv.FormatInt(*query.ExerciseID, 10))
	}
	if query.Date != nil {
		params.Set("data", query.Date.Format(dateOnly))
	}

	var dto expenseReportDTO
	if err := c.getJSON(ctx, "/api/rapoarte/zilnic", params, &dto); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return dto.toEntity(), nil
}

// FetchPeriodReports returns one report per exercise in [start, end].
func (c *UpstreamClient) FetchPeriodReports(ctx context.Context, start, end time.Time) ([]entity.ExpenseReport, error) {
	params := url.Values{}
	params.Set("data_start", start.Format(dateOnly))
	params.Set("data_end", end.Format(dateOnly))

	var dtos []expenseReportDTO
	if err := c.getJSON(ctx, "/api/rapoarte/perioada", params, &dtos); err != nil {
		return nil, err
	}
	reports := make([]entity.ExpenseReport, 0, len(dtos))
	for i := range dtos {
		reports = append(reports, *dtos[i].toEntity())
	}
	return reports, nil
}

// FetchBalances returns wallet balances, scoped to an exercise when
// exerciseID is non-nil.
func (c *UpstreamClient) FetchBalances(ctx context.Context, exerciseID *int64) ([]entity.WalletBalance, error) {
	params := url.Values{}
	if exerciseID != nil {
		params.Set("exercitiu_id", strconv.FormatInt(*exerciseID, 10))
	}

	var dtos []walletBalanceDTO
	if err := c.getJSON(ctx, "/api/portofele/solduri", params, &dtos); err != nil {
		return nil, err
	}
	balances := make([]entity.WalletBalance, 0, len(dtos))
	for i := range dtos {
		balances = append(balances, dtos[i].toEntity())
	}
	return balances, nil
}

// FetchTopUps returns the top-ups recorded in an exercise.
func (c *UpstreamClient) FetchTopUps(ctx context.Context, exerciseID int64) ([]entity.TopUp, error) {
	params := url.Values{}
	params.Set("exercitiu_id", strconv.FormatInt(exerciseID, 10))

	var dtos []topUpDTO
	if err := c.getJSON(ctx, "/api/alimentari", params, &dtos); err != nil {
		return nil, err
	}
	topUps := make([]entity.TopUp, 0, len(dtos))
	for i := range dtos {
		topUps = append(topUps, dtos[i].toEntity())
	}
	return topUps, nil
}

// FetchTransfers returns the transfers recorded in an exercise.
func (c *UpstreamClient) FetchTransfers(ctx context.Context, exerciseID int64) ([]entity.Transfer, error) {
	params := url.Values{}
	params.Set("exercitiu_id", strconv.FormatInt(exerciseID, 10))

	var dtos []transferDTO
	if err := c.getJSON(ctx, "/api/transferuri", params, &dtos); err != nil {
		return nil, err
	}
	transfers := make([]entity.Transfer, 0, len(dtos))
	for i := range dtos {
		transfers = append(transfers, dtos[i].toEntity())
	}
	return transfers, nil
}

// FetchWallets returns the wallet reference list.
func (c *UpstreamClient) FetchWallets(ctx context.Context) ([]entity.Wallet, error) {
	var dtos []walletDTO
	if err := c.getJSON(ctx, "/api/portofele", nil, &dtos); err != nil {
		return nil, err
	}
	wallets := make([]entity.Wallet, 0, len(dtos))
	for i := range dtos {
		wallets = append(wallets, dtos[i].toEntity())
	}
	return wallets, nil
}

// FetchCategories returns the category reference list.
func (c *UpstreamClient) FetchCategories(ctx context.Context) ([]entity.Category, error) {
	var dtos []categoryDTO
	if err := c.getJSON(ctx, "/api/categorii", nil, &dtos); err != nil {
		return nil, err
	}
	categories := make([]entity.Category, 0, len(dtos))
	for i := range dtos {
		categories = append(categories, dtos[i].toEntity())
	}
	return categories, nil
}

// FetchCurrencyLabels returns the currency reference list.
func (c *UpstreamClient) FetchCurrencyLabels(ctx context.Context) ([]entity.CurrencyLabel, error) {
	var dtos []currencyLabelDTO
	if err := c.getJSON(ctx, "/api/monede", nil, &dtos); err != nil {
		return nil, err
	}
	labels := make([]entity.CurrencyLabel, 0, len(dtos))
	for i := range dtos {
		labels = append(labels, dtos[i].toEntity())
	}
	return labels, nil
}

// FetchCallDays returns upstream-computed call statistics per day.
func (c *UpstreamClient) FetchCallDays(ctx context.Context, start, end time.Time) ([]entity.CallDay, error) {
	params := url.Values{}
	params.Set("data_start", start.Format(dateOnly))
	params.Set("data_end", end.Format(dateOnly))

	var dtos []callDayDTO
	if err := c.getJSON(ctx, "/api/apeluri/zilnic", params, &dtos); err != nil {
		return nil, err
	}
	days := make([]entity.CallDay, 0, len(dtos))
	for i := range dtos {
		days = append(days, dtos[i].toEntity())
	}
	return days, nil
}

// statusError carries the upstream HTTP status for dispatch on 404.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.status, e.body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.status == http.StatusNotFound
}

func (c *UpstreamClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{status: resp.StatusCode, body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}
