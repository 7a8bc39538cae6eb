package main

import (
	"log"
	"os"

	"hypotest/internal"
	"hypotest/internal/config"
	"hypotest/internal/report"
	"hypotest/internal/testkit"
)

// Prints the example test-score comparison using settings from the environment (or .env).
func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger.SetLevel(internal.ParseLogLevel(appConfig.Logging.Level))

	fx := testkit.ExampleScores()
	r, err := report.Build(report.Input{
		Label1:        fx.Label1,
		Label2:        fx.Label2,
		Sample1:       fx.Sample1,
		Sample2:       fx.Sample2,
		Alpha:         appConfig.Test.Alpha,
		EqualVariance: appConfig.Test.EqualVariance,
	})
	if err != nil {
		log.Fatalf("Failed to compare %s: %v", fx.Name, err)
	}

	if err := report.Render(os.Stdout, r, appConfig.Report.Format); err != nil {
		log.Fatalf("Failed to print report: %v", err)
	}
}
