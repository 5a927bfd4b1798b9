// Package valuation exposes the pipeline over HTTP for the dashboard layer.
package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/pipeline"
	"dcf_valuation/pkg/core/report"
	"dcf_valuation/pkg/core/validate"
)

var orchestrator *pipeline.Orchestrator

// InitHandler wires the shared orchestrator into the package handlers.
func InitHandler(orch *pipeline.Orchestrator) {
	orchestrator = orch
}

// RunRequest is the POST body for a valuation run. Historical is optional;
// when absent a synthetic series anchors the plausibility check.
type RunRequest struct {
	Assumptions assumption.Assumptions  `json:"assumptions"`
	Historical  []validate.RevenuePoint `json:"historical,omitempty"`
}

// RunResponse bundles the structured results with a pre-rendered markdown
// digest for the frontend.
type RunResponse struct {
	Results  report.Results `json:"results"`
	Markdown string         `json:"markdown"`
}

// HandleRun executes a full valuation run.
func HandleRun(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if orchestrator == nil {
		http.Error(w, "valuation handler not initialized", http.StatusInternalServerError)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := orchestrator.Run(r.Context(), pipeline.Request{
		Assumptions: req.Assumptions,
		Historical:  req.Historical,
	})
	if err != nil {
		// Bad inputs surface as 422; anything else is a server fault.
		status := http.StatusInternalServerError
		var verr *assumption.ValidationError
		if errors.As(err, &verr) || strings.Contains(err.Error(), "plausibility check failed") {
			status = http.StatusUnprocessableEntity
		}
		fmt.Printf("[VALUATION] Run failed: %v\n", err)
		http.Error(w, err.Error(), status)
		return
	}

	markdown, err := report.RenderMarkdown(results)
	if err != nil {
		fmt.Printf("[VALUATION] Markdown rendering failed: %v\n", err)
		markdown = ""
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RunResponse{Results: results, Markdown: markdown}); err != nil {
		fmt.Printf("[VALUATION] Failed to encode response: %v\n", err)
	}
}
