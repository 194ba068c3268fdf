package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/config"
)

// SessionHandler issues an anonymous session token. Test takers are not
// registered users; a session is just a stable subject for grouping their
// results. A browser that already holds a session cookie gets the same
// subject back.
func SessionHandler(a *authmw.AuthService) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		UserSession string `json:"user_session"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		session := ""
		if c, err := r.Cookie("bp_session"); err == nil && c.Value != "" {
			if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
				session = c.Value
			}
		}
		if session == "" {
			session = uuid.NewString()
		}

		tok, err := a.IssueJWT(session, "user")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "bp_session",
			Value:    session,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, UserSession: session})
	}
}

// AdminLoginHandler checks credentials against the configured bcrypt hash.
func AdminLoginHandler(a *authmw.AuthService, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Username != cfg.AdminUser ||
			bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassHash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(req.Username, "admin")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}
