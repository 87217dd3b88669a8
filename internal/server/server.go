// Package server provides the HTTP REST API for cv-studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahmoud/cv-studio/internal/db"
	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/store"
	"github.com/mahmoud/cv-studio/internal/telemetry"
	"github.com/mahmoud/cv-studio/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	store        *store.Store
	importer     *importer.Importer
	db           *db.DB
	events       *telemetry.Logger
	defaultTheme rendering.Theme
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	DefaultTheme string
	Telemetry    telemetry.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	theme := rendering.DefaultTheme
	if cfg.DefaultTheme != "" {
		parsed, err := rendering.ParseTheme(cfg.DefaultTheme)
		if err != nil {
			return nil, fmt.Errorf("invalid default theme: %w", err)
		}
		theme = parsed
	}

	st := store.New(types.DefaultCV())
	s := &Server{
		store:        st,
		importer:     importer.New(st),
		events:       telemetry.New(cfg.Telemetry),
		defaultTheme: theme,
	}

	// Snapshot persistence is optional: without a database URL the /cvs
	// endpoints answer 503 and everything else works in memory.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to prepare schema: %w", err)
		}
		s.db = database
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF printing can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /cv", s.handleGetCV)
	mux.HandleFunc("PUT /cv", s.handleReplaceCV)
	mux.HandleFunc("PATCH /cv/field", s.handleUpdateField)
	mux.HandleFunc("POST /cv/import", s.handleImport)
	mux.HandleFunc("GET /cv/score", s.handleScore)
	mux.HandleFunc("GET /cv/preview", s.handlePreview)
	mux.HandleFunc("GET /cv/preview/text", s.handlePreviewText)

	// Theme catalog
	mux.HandleFunc("GET /themes", s.handleThemes)

	// Export endpoints
	mux.HandleFunc("POST /export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /export/docx", s.handleExportDOCX)
	mux.HandleFunc("POST /export/bundle", s.handleExportBundle)

	// Snapshot endpoints
	mux.HandleFunc("POST /cvs", s.handleSaveSnapshot)
	mux.HandleFunc("GET /cvs", s.handleListSnapshots)
	mux.HandleFunc("GET /cvs/{id}", s.handleGetSnapshot)
	mux.HandleFunc("POST /cvs/{id}/load", s.handleLoadSnapshot)
	mux.HandleFunc("DELETE /cvs/{id}", s.handleDeleteSnapshot)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.events.Close()
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
