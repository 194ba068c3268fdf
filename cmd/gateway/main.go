package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/personal-blueprint/blueprint-backend/internal/api/http"
	"github.com/personal-blueprint/blueprint-backend/internal/auth"
	authmw "github.com/personal-blueprint/blueprint-backend/internal/auth/middleware"
	"github.com/personal-blueprint/blueprint-backend/internal/config"
	"github.com/personal-blueprint/blueprint-backend/internal/db"
	"github.com/personal-blueprint/blueprint-backend/internal/results"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := results.NewSQLStore(dbh)

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Session bootstrap and admin login are the only unauthenticated routes.
	r.Post("/api/auth/session", auth.SessionHandler(authSvc))
	r.Post("/api/auth/login", auth.AdminLoginHandler(authSvc, cfg))

	// Test catalog is public read-only metadata.
	r.Get("/api/tests", api.ListTestsHandler())
	r.Get("/api/tests/metadata/{testID}", api.MetadataHandler())

	// Scoring and profile routes require a session token.
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.Post("/api/tests/{testID}/submit", api.SubmitTestHandler(store))
		pr.Get("/api/tests/{testID}/results/{resultID}", api.GetResultHandler(store))

		pr.Get("/api/profile/results", api.ListSessionResultsHandler(store))
		pr.Delete("/api/profile/results", api.DeleteSessionResultsHandler(store))
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		log.Printf("gateway listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	_ = dbh.Close()
}
