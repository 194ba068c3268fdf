package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/personal-blueprint/blueprint-backend/internal/api/http"
	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/results"
)

func newTestRouter(t *testing.T, store results.Store) (*chi.Mux, string) {
	t.Helper()
	authSvc := authmw.NewAuthService("test-secret")
	tok, err := authSvc.IssueJWT("session-1", "user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	r := chi.NewRouter()
	r.Get("/api/tests", api.ListTestsHandler())
	r.Get("/api/tests/metadata/{testID}", api.MetadataHandler())
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.Post("/api/tests/{testID}/submit", api.SubmitTestHandler(store))
		pr.Get("/api/tests/{testID}/results/{resultID}", api.GetResultHandler(store))
		pr.Get("/api/profile/results", api.ListSessionResultsHandler(store))
		pr.Delete("/api/profile/results", api.DeleteSessionResultsHandler(store))
	})
	return r, tok
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAndFetchResult(t *testing.T) {
	store := results.NewInMemoryStore()
	r, tok := newTestRouter(t, store)

	body := `{"answers":{"1":"I","2":"N","3":"N","4":"T","5":"T","6":"J","7":"J","8":"I","9":"N","10":"N","11":"T","12":"T","13":"J","14":"J","15":"I","16":"N","17":"N","18":"T","19":"T","20":"J"}}`
	w := do(r, "POST", "/api/tests/mbti/submit", tok, body)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool               `json:"success"`
		Result  results.TestResult `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Result.Label != "INTJ" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Result.UserSession != "session-1" {
		t.Errorf("session = %q, want token subject", resp.Result.UserSession)
	}

	w = do(r, "GET", "/api/tests/mbti/results/"+resp.Result.ID, tok, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var fetched results.TestResult
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.Label != "INTJ" || fetched.Confidence != 0.9 {
		t.Errorf("fetched = %+v", fetched)
	}
}

func TestSubmitUnknownTest(t *testing.T) {
	r, tok := newTestRouter(t, results.NewInMemoryStore())
	w := do(r, "POST", "/api/tests/tarot/submit", tok, `{"answers":{}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSubmitNumerologyMissingInputs(t *testing.T) {
	store := results.NewInMemoryStore()
	r, tok := newTestRouter(t, store)
	w := do(r, "POST", "/api/tests/numerology/submit", tok, `{"answers":{}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	// Failed scorings must not be persisted.
	list, _ := store.ListResults("session-1")
	if len(list) != 0 {
		t.Errorf("stored %d results for a failed scoring", len(list))
	}
}

func TestResultHiddenFromOtherSessions(t *testing.T) {
	store := results.NewInMemoryStore()
	r, tok := newTestRouter(t, store)
	_ = store.SaveResult(results.TestResult{ID: "r1", TestID: "mbti", UserSession: "someone-else"})

	w := do(r, "GET", "/api/tests/mbti/results/r1", tok, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for foreign result", w.Code)
	}
}

func TestProfileResultsLifecycle(t *testing.T) {
	store := results.NewInMemoryStore()
	r, tok := newTestRouter(t, store)

	w := do(r, "POST", "/api/tests/disc/submit", tok, `{"answers":{"1":"D","2":"D","3":"I"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d", w.Code)
	}

	w = do(r, "GET", "/api/profile/results", tok, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listResp struct {
		UserSession string               `json:"user_session"`
		Results     []results.TestResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if len(listResp.Results) != 1 || listResp.Results[0].Label != "D" {
		t.Fatalf("list = %+v", listResp)
	}

	if w = do(r, "DELETE", "/api/profile/results", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = do(r, "GET", "/api/profile/results", tok, "")
	_ = json.Unmarshal(w.Body.Bytes(), &listResp)
	if len(listResp.Results) != 0 {
		t.Errorf("results survived deletion: %+v", listResp.Results)
	}
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestRouter(t, results.NewInMemoryStore())
	if w := do(r, "POST", "/api/tests/mbti/submit", "", `{"answers":{}}`); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without bearer", w.Code)
	}
	if w := do(r, "POST", "/api/tests/mbti/submit", "garbage", `{"answers":{}}`); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for bad token", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, results.NewInMemoryStore())

	w := do(r, "GET", "/api/tests", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("catalog status = %d", w.Code)
	}
	var catalog struct {
		Tests []struct {
			ID string `json:"id"`
		} `json:"tests"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &catalog); err != nil {
		t.Fatal(err)
	}
	if len(catalog.Tests) != 11 {
		t.Errorf("catalog size = %d, want 11", len(catalog.Tests))
	}

	if w = do(r, "GET", "/api/tests/metadata/bigFive", "", ""); w.Code != http.StatusOK {
		t.Errorf("metadata status = %d", w.Code)
	}
	if w = do(r, "GET", "/api/tests/metadata/not_a_real_test", "", ""); w.Code != http.StatusNotFound {
		t.Errorf("metadata miss status = %d, want 404", w.Code)
	}
}
