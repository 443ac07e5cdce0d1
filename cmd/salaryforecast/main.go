package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/client"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/config"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/datasource"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/projection"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 SalaryForecast Usage Examples 📋")
	fmt.Println("\n1. Project next year's salaries from the default endpoints:")
	fmt.Println("   salaryforecast")

	fmt.Println("\n2. Use the built-in fallback data without touching the network:")
	fmt.Println("   salaryforecast --offline")

	fmt.Println("\n3. Point the salary table at a local server and assume 3% inflation:")
	fmt.Println("   salaryforecast --salary-url http://localhost:8000/salaries.json --inflation 0.03")

	fmt.Println("\n4. Load skills, bands and endpoints from a YAML file, routing requests through a proxy:")
	fmt.Println("   salaryforecast --config forecast.yaml --proxy http://localhost:8080")

	fmt.Println("\n5. Show per-role debug logging and silence the banner:")
	fmt.Println("   salaryforecast --debug --silence")

	fmt.Println("\nFor more information, visit: https://github.com/fr4nk3nst1ner/salaryforecast")
}

// tables holds the three inputs of a projection run
type tables struct {
	salary []models.RoleRecord
	demand []models.FactorRecord
	geo    []models.FactorRecord
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("salaryforecast", pflag.ExitOnError)
	config.RegisterFlags(flags)

	// Banner control flags (two aliases for the same functionality)
	silence := flags.Bool("silence", false, "Silence the banner")
	noBanner := flags.Bool("nobanner", false, "Silence the banner (alias for --silence)")
	noProgress := flags.Bool("no-progress", false, "Hide the fetch progress bar")
	examples := flags.Bool("examples", false, "Show usage examples")

	if err := flags.Parse(args); err != nil {
		return err
	}

	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return nil
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() {
		// Sync on stderr returns EINVAL on some platforms; nothing to do about it.
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	logger.Debug("starting projection run",
		zap.String("salary_url", cfg.SalaryURL),
		zap.String("demand_url", cfg.DemandURL),
		zap.String("geo_url", cfg.GeoURL),
		zap.Float64("inflation_rate", cfg.InflationRate),
		zap.Bool("offline", cfg.Offline))

	input := loadTables(context.Background(), cfg, logger, !*noProgress)

	settings := cfg.Settings()
	results, err := projection.NewProjector(settings, logger).Project(input.salary, input.demand, input.geo)
	if err != nil {
		return err
	}

	return ui.PrintProjections(settings, results)
}

// newLogger builds a console logger on stderr. Warnings are always shown,
// debug output only with --debug.
func newLogger(debug bool) (*zap.Logger, error) {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.DisableStacktrace = true
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zapConfig.Build()
}

// loadTables fetches the salary, demand and geographic tables one after the
// other, substituting the built-in data for any table that cannot be fetched.
func loadTables(ctx context.Context, cfg *config.Config, logger *zap.Logger, showProgress bool) tables {
	if cfg.Offline {
		pterm.Info.Println("Offline mode: using built-in fallback data")
		return tables{
			salary: datasource.SalaryFallback(),
			demand: datasource.DemandFallback(),
			geo:    datasource.GeographicFallback(),
		}
	}

	source := datasource.NewSource(client.CreateProxyHTTPClient(cfg.Proxy), logger)

	bar := pb.New(3).SetWriter(os.Stderr)
	if showProgress {
		bar.Start()
		defer bar.Finish()
	}

	var input tables
	input.salary = datasource.FetchOrFallback(ctx, source, cfg.SalaryURL,
		datasource.DecodeRoleRecords, datasource.SalaryFallback())
	bar.Increment()

	input.demand = datasource.FetchOrFallback(ctx, source, cfg.DemandURL,
		datasource.FactorDecoder(models.DemandFactorKey), datasource.DemandFallback())
	bar.Increment()

	input.geo = datasource.FetchOrFallback(ctx, source, cfg.GeoURL,
		datasource.FactorDecoder(models.GeographicFactorKey), datasource.GeographicFallback())
	bar.Increment()

	return input
}
