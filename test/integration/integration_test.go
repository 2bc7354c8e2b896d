//go:build integration

// Package integration drives the HTTP API end to end with godog scenarios:
// auth, transactions, predictions and budgets against one shared database.
package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/MatheusJosue/planilha-financeira-v2/test/integration/steps"
)

// featurePaths lets a single file be run with GODOG_PATHS=features/predictions.feature.
func featurePaths() []string {
	raw := os.Getenv("GODOG_PATHS")
	if raw == "" {
		return []string{"features"}
	}
	return strings.Split(raw, ",")
}

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       featurePaths(),
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1, // scenarios share one database and one clock
		Strict:      true,
		Tags:        os.Getenv("GODOG_TAGS"),
		TestingT:    t,
	}

	status := godog.TestSuite{
		Name:                 "planilha-financeira-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &opts,
	}.Run()

	if status != 0 {
		t.Fatalf("feature suite exited with status %d", status)
	}
}
