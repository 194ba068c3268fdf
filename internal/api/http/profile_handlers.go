package http

import (
	"encoding/json"
	"net/http"

	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/results"
)

// ListSessionResultsHandler returns every stored result for the caller's
// session, newest first. Downstream profile synthesis consumes this.
func ListSessionResultsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := authmw.SubjectFromContext(r.Context())
		list, err := store.ListResults(session)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []results.TestResult{}
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user_session": session,
			"results":      list,
		})
	}
}

// DeleteSessionResultsHandler wipes the caller's stored results.
func DeleteSessionResultsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := authmw.SubjectFromContext(r.Context())
		if err := store.DeleteResults(session); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}
}
