package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"dcf_valuation/pkg/api/valuation"
	"dcf_valuation/pkg/core/config"
	"dcf_valuation/pkg/core/pipeline"
	"dcf_valuation/pkg/core/store"
)

func main() {
	godotenv.Load()

	settings := config.FromEnv()
	if err := settings.EnsureDirs(); err != nil {
		log.Fatalf("Failed to prepare directories: %v", err)
	}

	orch := pipeline.NewOrchestrator(settings)
	if settings.PersistDB {
		if err := store.InitDB(context.Background()); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()
		orch.SetRepository(store.NewValuationRepo())
		fmt.Println("Database persistence enabled")
	}

	valuation.InitHandler(orch)
	http.HandleFunc("/api/valuation/run", valuation.HandleRun)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/valuation/run")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
