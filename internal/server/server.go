// Package server implements the REST API for resume storage, section
// editing, and job description matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
)

// Server wraps the HTTP server and its backing stores. The db and drafts
// fields may be nil, in which case only the stateless analysis endpoints
// are usable and the storage endpoints return 503.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	drafts      *draft.Store
	rateLimiter *ratelimit.Limiter
}

// New creates a server listening on the given port.
func New(port int, database *db.DB, drafts *draft.Store) *Server {
	s := &Server{
		db:          database,
		drafts:      drafts,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /keywords/extract", s.handleExtractKeywords)
	mux.HandleFunc("POST /keywords/parse", s.handleParseKeywords)

	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	mux.HandleFunc("GET /resumes/{id}/sections", s.handleListSections)
	mux.HandleFunc("POST /resumes/{id}/sections", s.handleCreateSection)
	mux.HandleFunc("PATCH /resumes/{id}/sections/{sectionID}", s.handlePatchSection)
	mux.HandleFunc("DELETE /resumes/{id}/sections/{sectionID}", s.handleDeleteSection)
	mux.HandleFunc("POST /resumes/{id}/sections/{sectionID}/move", s.handleMoveSection)

	mux.HandleFunc("POST /job-descriptions", s.handleSaveJobDescription)
	mux.HandleFunc("GET /job-descriptions", s.handleListJobDescriptions)
	mux.HandleFunc("GET /job-descriptions/{id}", s.handleGetJobDescription)

	mux.HandleFunc("GET /resumes/{id}/draft", s.handleGetDraft)
	mux.HandleFunc("PUT /resumes/{id}/draft", s.handleSaveDraft)
	mux.HandleFunc("DELETE /resumes/{id}/draft", s.handleDeleteDraft)

	handler := withCORS(s.withRateLimit(withLogging(mux)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	s.rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds permissive CORS headers; the API is consumed by a local UI.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// extractClientID derives a client identifier from the request, preferring
// the forwarded address when behind a proxy.
func extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit == 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := max(int(time.Until(info.ResetTime).Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	jsonResponse(w, http.StatusTooManyRequests, map[string]string{
		"error": "rate limit exceeded",
	})
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		jsonResponse(w, status, map[string]string{"error": "internal server error"})
		return
	}
	jsonResponse(w, status, map[string]string{"error": err.Error()})
}

// requireDB guards storage endpoints when the server runs without a database.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"error": "storage is not configured",
		})
		return false
	}
	return true
}

func (s *Server) requireDrafts(w http.ResponseWriter) bool {
	if s.drafts == nil {
		jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"error": "draft storage is not configured",
		})
		return false
	}
	return true
}
