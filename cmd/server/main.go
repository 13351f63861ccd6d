// Command server runs the Soullec API: anonymous sessions, Soul Gems,
// horoscope calculation, and AI-generated readings.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/soullec/soullec/internal/logger"
	"github.com/soullec/soullec/oracle"
	"github.com/soullec/soullec/store"
)

type Server struct {
	store  store.Storage
	oracle oracle.Oracle
	db     *sql.DB // nil when running on the in-memory store
	router *chi.Mux
}

func NewServer(storage store.Storage, o oracle.Oracle) *Server {
	s := &Server{
		store:  storage,
		oracle: o,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/api/health", s.handleHealth)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/session", s.handleSession)
		r.Post("/link", s.handleLinkAccounts)
		r.Get("/gems/{userId}", s.handleGetGems)
		r.Post("/profile", s.handleUpdateProfile)
		r.Get("/profile/{userId}", s.handleGetProfile)
		r.Get("/{userId}/status", s.handleGetStatus)
	})

	r.Post("/api/messages/generate", s.handleGenerateMessage)
	r.Get("/api/messages/{userId}", s.handleListMessages)
	r.Post("/api/manifestation/generate", s.handleGenerateAffirmation)

	r.Post("/api/horoscope/daily", s.handleDailyHoroscope)
	r.Post("/api/horoscope/reading", s.handleHoroscopeReading)

	r.Post("/api/tarot/reading", s.handleTarotReading)

	r.Get("/api/referral/generate/{userId}", s.handleGenerateReferral)
	r.Post("/api/referral/redeem", s.handleRedeemReferral)

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/gems", s.handleGemPurchase)
		r.Post("/subscription", s.handleSubscription)
		r.Get("/{userId}", s.handleListPayments)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"oracleConfigured": s.oracle != nil,
		"errors":           logger.TotalErrors.Load(),
		"generationErrors": logger.GenerationErrors.Load(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func main() {
	var storage store.Storage
	var db *sql.DB

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		var err error
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			logger.Fatal("failed to open database", "error", err)
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("failed to ping database", "error", err)
		}
		storage = store.NewPostgresStorage(db)
		logger.Info("using postgres storage")
	} else {
		storage = store.NewMemStorage()
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	var o oracle.Oracle
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := oracle.NewGemini(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logger.Fatal("failed to create oracle", "error", err)
		}
		o = gemini
		logger.Info("oracle configured")
	} else {
		logger.Warn("GEMINI_API_KEY not set, generation endpoints will return 503")
	}

	server := NewServer(storage, o)
	server.db = db
	if db != nil {
		defer db.Close()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
