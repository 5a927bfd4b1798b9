package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"dcf_valuation/pkg/core/config"
	"dcf_valuation/pkg/core/pipeline"
	"dcf_valuation/pkg/core/report"
	"dcf_valuation/pkg/core/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := flag.String("config", "", "run config file (.yaml or .hjson) with assumptions")
	csvPath := flag.String("csv", "", "historical revenue CSV (overrides config)")
	outputDir := flag.String("out", "", "artifact output directory (overrides OUTPUT_DIR)")
	persist := flag.Bool("persist", false, "save the run to Postgres (requires DATABASE_URL)")
	showCurve := flag.Bool("curve", false, "print the full sensitivity curve")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("Usage: pipeline -config run.yaml [-csv data.csv] [-out dir] [-persist]")
	}

	settings := config.FromEnv()
	if *outputDir != "" {
		settings.OutputDir = *outputDir
	}

	runCfg, err := config.LoadRunConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	historicalCSV := *csvPath
	if historicalCSV == "" && runCfg.HistoricalCSV != "" {
		historicalCSV = runCfg.HistoricalCSV
		if !filepath.IsAbs(historicalCSV) {
			historicalCSV = filepath.Join(settings.DataDir, historicalCSV)
		}
	}

	fmt.Println("Scenario DCF pipeline starting...")

	orch := pipeline.NewOrchestrator(settings)
	if *persist || settings.PersistDB {
		if err := store.InitDB(context.Background()); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()
		orch.SetRepository(store.NewValuationRepo())
	}

	results, err := orch.Run(context.Background(), pipeline.Request{
		Assumptions: runCfg.Assumptions,
		CSVPath:     historicalCSV,
	})
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	fmt.Println()
	report.PrintScenarioTable(os.Stdout, results)
	if *showCurve {
		fmt.Println()
		report.PrintSensitivityTable(os.Stdout, results)
	}

	fmt.Println("\nArtifacts:")
	for name, path := range results.Artifacts {
		fmt.Printf("  %-24s %s\n", name, path)
	}
}
