// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/calls"
	"github.com/opsboard/backend/internal/application/usecase/ledger"
	"github.com/opsboard/backend/internal/application/usecase/reference"
	"github.com/opsboard/backend/internal/application/usecase/report"
	"github.com/opsboard/backend/internal/application/usecase/snapshot"
	"github.com/opsboard/backend/internal/domain/currency"
	"github.com/opsboard/backend/internal/infra/server/router"
	"github.com/opsboard/backend/internal/integration/adapters"
	"github.com/opsboard/backend/internal/integration/entrypoint/controller"
	"github.com/opsboard/backend/internal/integration/persistence"
	"github.com/opsboard/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Stub upstream and app server
	upstream *mock.UpstreamServer
	server   *httptest.Server
	engine   *gin.Engine

	// Last response
	response     *http.Response
	responseBody []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{upstream: mock.NewUpstreamServer()}
		tc.upstream.Start()

		// Wire the app against the stub upstream. The summary cache runs
		// on miniredis so memoization is exercised end to end.
		upstreamClient := adapters.NewUpstreamClient(tc.upstream.URL(), "", 5*time.Second)
		snapshotStore := persistence.NewSnapshotStore()
		registry := currency.NewRegistry()
		formatter := currency.NewFormatter(registry)
		summaryCache := adapters.NewRedisSummaryCache(mock.NewRedis(), time.Hour)

		refreshUseCase := snapshot.NewRefreshUseCase(upstreamClient, snapshotStore, registry)
		getSummaryUseCase := ledger.NewGetSummaryUseCase(snapshotStore, summaryCache, formatter)
		listMovementsUseCase := ledger.NewListMovementsUseCase(snapshotStore)
		getDailyReportUseCase := report.NewGetDailyReportUseCase(upstreamClient, formatter)
		getPeriodReportUseCase := report.NewGetPeriodReportUseCase(upstreamClient, formatter)
		getOverviewUseCase := calls.NewGetOverviewUseCase(upstreamClient)
		listReferenceUseCase := reference.NewListReferenceUseCase(upstreamClient)
		listWalletsUseCase := reference.NewListWalletsUseCase(upstreamClient)
		listCategoriesUseCase := reference.NewListCategoriesUseCase(upstreamClient)
		listCurrenciesUseCase := reference.NewListCurrenciesUseCase(upstreamClient)

		healthController := controller.NewHealthController(func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return upstreamClient.Ping(pingCtx) == nil
		}, snapshotStore)

		r := router.NewRouter(
			healthController,
			controller.NewSummaryController(getSummaryUseCase),
			controller.NewMovementsController(listMovementsUseCase),
			controller.NewReportController(getDailyReportUseCase, getPeriodReportUseCase),
			controller.NewCallsController(getOverviewUseCase),
			controller.NewReferenceController(
				listReferenceUseCase,
				listWalletsUseCase,
				listCategoriesUseCase,
				listCurrenciesUseCase,
			),
			controller.NewSnapshotController(refreshUseCase),
			nil, // refresh endpoint unthrottled in tests
		)
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.upstream != nil {
				tc.upstream.Close()
			}
		}
		return ctx, nil
	})

	registerUpstreamSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^the snapshot is refreshed$`, theSnapshotIsRefreshed)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.doRequest(method, endpoint)
}

func theSnapshotIsRefreshed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(http.MethodPost, "/api/v1/snapshot/refresh"); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh returned %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("status = %d, want %d (body: %s)", tc.response.StatusCode, status, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.responseBody == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), substring) {
		return fmt.Errorf("response %s does not contain %q", tc.responseBody, substring)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, want string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	got := fmt.Sprintf("%v", value)
	if got != want {
		return fmt.Errorf("field %q = %q, want %q", path, got, want)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(path)
	return err
}

// doRequest performs a request against the app server and records the result.
func (tc *TestContext) doRequest(method, endpoint string) error {
	req, err := http.NewRequest(method, tc.server.URL+endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.response = resp
	tc.responseBody = body
	return nil
}

// lookupField resolves a dotted path ("total_top_ups.formatted") in the last
// JSON response.
func (tc *TestContext) lookupField(path string) (any, error) {
	if tc.responseBody == nil {
		return nil, fmt.Errorf("no response recorded")
	}
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found at %q", path, segment)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: %q is not a valid index into %d elements", path, segment, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: %q is not an object or array", path, segment)
		}
	}
	return current, nil
}
