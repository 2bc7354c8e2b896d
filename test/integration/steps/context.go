// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/MatheusJosue/planilha-financeira-v2/config"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/cache"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/db"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/infra/dependency"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
	"github.com/MatheusJosue/planilha-financeira-v2/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

	// DefaultPassword is used by steps that register a user without naming a password.
	DefaultPassword = "Senha1234"
)

// environment is shared by every scenario of a run.
type environment struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	timeMock *mock.Time
	emailAPI *mock.ApiMock
}

var suite *environment

// testContext holds the state of one scenario.
type testContext struct {
	env      *environment
	client   *http.Client
	headers  map[string]string
	response *response

	accessToken  string
	refreshToken string
	// vars holds values saved from earlier responses, used as {{name}} placeholders.
	vars map[string]string
}

type response struct {
	status int
	body   any
	raw    []byte
	header http.Header
}

// InitializeTestSuite builds the application once over SQLite, miniredis,
// a settable clock and a fake email provider.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		suite = newEnvironment()
	})

	ctx.AfterSuite(func() {
		if suite == nil {
			return
		}
		suite.server.Close()
		suite.emailAPI.Close()
	})
}

func newEnvironment() *environment {
	env := &environment{
		db:       mock.NewDb(model.All()),
		timeMock: mock.NewTime(),
		emailAPI: mock.NewApiServer(),
	}
	env.emailAPI.Start()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Server.LoginRateLimit = 0
	cfg.JWT.Secret = testJWTSecret
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.ResendBaseURL = env.emailAPI.GetUrl()
	cfg.Email.WorkerEnabled = true
	cfg.Email.BudgetAlerts = true

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	injector, err := dependency.NewInjector(
		cfg,
		db.NewDatabase(env.db.DbConn),
		cache.NewRedis(mock.NewRedis()),
		dependency.Options{
			Clock:      env.timeMock,
			BcryptCost: bcrypt.MinCost,
			Logger:     logger,
		},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to wire application: %v", err))
	}

	env.injector = injector
	env.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return env
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User setup steps
	ctx.Step(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I upload the file "([^"]*)" to "([^"]*)" with content:$`, test.iUploadTheFileToWithContent)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)
	ctx.When(`^the email worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External API assertion steps
	ctx.Then(`^the email API should have received (\d+) requests? to "([^"]*)" "([^"]*)"$`, test.theEmailAPIShouldHaveReceivedRequestsTo)
	ctx.Then(`^the email API request (\d+) to "([^"]*)" "([^"]*)" field "([^"]*)" should contain "([^"]*)"$`, test.theEmailAPIRequestFieldShouldContain)
}

func (t *testContext) before() error {
	t.env = suite
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.vars = make(map[string]string)

	if t.env == nil {
		return fmt.Errorf("test environment was not initialized")
	}

	t.env.timeMock.Reset()
	t.env.emailAPI.Reset()
	t.env.emailAPI.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-test-id"})

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.env.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.env.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check answered %d", resp.StatusCode)
	}
	return nil
}

// todayIs pins the application clock to noon UTC of the given date.
func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	t.env.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}
