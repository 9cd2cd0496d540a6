package analyzer

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"genuine-checker/logger"
)

type CheckRequest struct {
	URL string `json:"url"`
}

// CheckHandler analyzes the submitted URL and writes the result as JSON.
func CheckHandler(a *Analyzer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result := a.Analyze(r.Context(), req.URL)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("encode response", logger.Error(err))
			return
		}

		log.Info("analysis completed",
			logger.String("domain", result.Domain),
			logger.String("status", string(result.Status)),
			logger.String("reason", result.Reason),
			logger.Int("trust_score", result.TrustScore))
	}
}

// IndexHandler serves the static lookup page.
func IndexHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
