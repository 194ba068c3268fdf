package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/personal-blueprint/blueprint-backend/internal/auth"
	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/config"
)

func TestSessionHandlerIssuesToken(t *testing.T) {
	svc := authmw.NewAuthService("test-secret")
	w := httptest.NewRecorder()
	auth.SessionHandler(svc)(w, httptest.NewRequest("POST", "/api/auth/session", nil))

	var resp struct {
		AccessToken string `json:"access_token"`
		UserSession string `json:"user_session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken == "" || resp.UserSession == "" {
		t.Fatalf("resp = %+v", resp)
	}
	claims, err := svc.Parse(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Sub != resp.UserSession || claims.Role != "user" {
		t.Errorf("claims = %+v", claims)
	}
	// A session cookie is set for reuse.
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "bp_session" && c.Value == resp.UserSession {
			found = true
		}
	}
	if !found {
		t.Error("bp_session cookie missing")
	}
}

func TestSessionHandlerReusesCookie(t *testing.T) {
	svc := authmw.NewAuthService("test-secret")
	const session = "af62d2f9-64c5-44c5-a6b8-0f3b12f6002e"
	req := httptest.NewRequest("POST", "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "bp_session", Value: session})
	w := httptest.NewRecorder()
	auth.SessionHandler(svc)(w, req)

	var resp struct {
		UserSession string `json:"user_session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.UserSession != session {
		t.Errorf("session = %q, want cookie value reused", resp.UserSession)
	}
}

func TestSessionHandlerRejectsForgedCookie(t *testing.T) {
	svc := authmw.NewAuthService("test-secret")
	req := httptest.NewRequest("POST", "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "bp_session", Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	auth.SessionHandler(svc)(w, req)

	var resp struct {
		UserSession string `json:"user_session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.UserSession == "not-a-uuid" {
		t.Error("malformed cookie value must not become the session id")
	}
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{AdminUser: "admin", AdminPassHash: string(hash)}
	svc := authmw.NewAuthService("test-secret")
	handler := auth.AdminLoginHandler(svc, cfg)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"hunter2"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(resp["access_token"])
	if err != nil || claims.Role != "admin" {
		t.Errorf("claims = %+v, err = %v", claims, err)
	}

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
