package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/results"
	"github.com/personal-blueprint/blueprint-backend/internal/scoring"
)

// SubmitTestHandler scores a submission and persists the outcome. The
// scoring engine never errors; its "unknown" label and result-level error
// field map to 4xx here.
func SubmitTestHandler(store results.Store) http.HandlerFunc {
	type out struct {
		Success bool               `json:"success"`
		Result  results.TestResult `json:"result"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		testID := chi.URLParam(r, "testID")
		var req struct {
			Answers map[string]interface{} `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		res := scoring.Score(testID, req.Answers)
		if res.Label == "unknown" {
			http.Error(w, "unknown test type: "+testID, http.StatusBadRequest)
			return
		}
		if res.Err != "" {
			http.Error(w, res.Err, http.StatusBadRequest)
			return
		}

		session := authmw.SubjectFromContext(r.Context())
		if session == "" {
			session = uuid.NewString()
		}
		rec := results.TestResult{
			ID:          uuid.NewString(),
			TestID:      testID,
			UserSession: session,
			Answers:     req.Answers,
			Label:       res.Label,
			Scores:      res.Scores,
			Analysis:    res.Analysis,
			Confidence:  res.Confidence,
			CompletedAt: time.Now().Unix(),
		}
		if err := store.SaveResult(rec); err != nil {
			http.Error(w, "save result", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out{Success: true, Result: rec})
	}
}

func GetResultHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := store.GetResult(chi.URLParam(r, "resultID"))
		if err != nil {
			if errors.Is(err, results.ErrNotFound) {
				http.Error(w, "result not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if res.TestID != chi.URLParam(r, "testID") {
			http.Error(w, "result not found", http.StatusNotFound)
			return
		}
		// Results are session-scoped; serving them to another session
		// would leak someone's profile.
		if res.UserSession != authmw.SubjectFromContext(r.Context()) {
			http.Error(w, "result not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func ListTestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tests": scoring.AllMetadata(),
		})
	}
}

func MetadataHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testID := chi.URLParam(r, "testID")
		m, ok := scoring.MetadataFor(testID)
		if !ok {
			http.Error(w, "test not found: "+testID, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"metadata": m,
		})
	}
}
