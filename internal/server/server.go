// Package server provides the HTTP REST API for the recruitment services.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/jonathan/talentdesk/internal/config"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/recruitment"
	_ "github.com/jonathan/talentdesk/internal/server/docs" // registers the OpenAPI document
	"github.com/jonathan/talentdesk/internal/server/middleware"
	"github.com/jonathan/talentdesk/internal/server/ratelimit"
	"github.com/jonathan/talentdesk/internal/types"
)

// DefaultMaxUploadBytes caps a multipart import request.
const DefaultMaxUploadBytes = 32 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	svc         *recruitment.Service
	log         *logging.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	maxUpload   int64
}

// Config holds server configuration
type Config struct {
	Port      string
	Service   *recruitment.Service
	Logger    *logging.Logger
	JWT       *config.JWTConfig
	Admin     *config.AdminConfig
	RateLimit *ratelimit.Config // nil loads RATE_LIMIT_* from the environment
	// MaxUploadBytes caps multipart bodies. Defaults to DefaultMaxUploadBytes.
	MaxUploadBytes int64
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, fmt.Errorf("recruitment service is required")
	}
	if cfg.JWT == nil || cfg.Admin == nil {
		return nil, fmt.Errorf("JWT and admin configuration are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = ratelimit.LoadConfig()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	s := &Server{
		svc:         cfg.Service,
		log:         cfg.Logger.With("component", "http"),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		jwtService:  NewJWTService(cfg.JWT),
		maxUpload:   cfg.MaxUploadBytes,
	}
	s.authHandler = NewAuthHandler(cfg.Admin, s.jwtService, s.log)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // streamed imports of large batches
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the full middleware chain around the routes.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()

	// Imported CV review queue
	api.HandleFunc("POST /imported-cvs", s.handleImportCVs)
	api.HandleFunc("POST /imported-cvs/stream", s.handleImportCVsStream)
	api.HandleFunc("GET /imported-cvs", s.handleListImportedCVs)
	api.HandleFunc("GET /imported-cvs/export.xlsx", s.handleExportWorkbook)
	api.HandleFunc("GET /imported-cvs/{id}", s.handleGetImportedCV)
	api.HandleFunc("POST /imported-cvs/{id}/review", s.handleReviewImportedCV)
	api.HandleFunc("DELETE /imported-cvs/{id}", s.handleDeleteImportedCV)
	api.HandleFunc("POST /extract", s.handleExtractPreview)

	// Candidates
	api.HandleFunc("GET /candidates", s.handleListCandidates)
	api.HandleFunc("POST /candidates", s.handleCreateCandidate)
	api.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	api.HandleFunc("POST /candidates/{id}/status", s.handleUpdateCandidateStatus)
	api.HandleFunc("POST /candidates/{id}/accept", s.quickAction(s.svc.Candidates.Accept))
	api.HandleFunc("POST /candidates/{id}/waiting-list", s.quickAction(s.svc.Candidates.WaitingList))
	api.HandleFunc("POST /candidates/{id}/reject", s.quickAction(s.svc.Candidates.Reject))
	api.HandleFunc("POST /candidates/{id}/rate", s.handleRateCandidate)
	api.HandleFunc("GET /candidates/{id}/interviews", s.handleListCandidateInterviews)

	// Interviews
	api.HandleFunc("POST /interviews", s.handleScheduleInterview)
	api.HandleFunc("GET /interviews/{id}", s.handleGetInterview)
	api.HandleFunc("POST /interviews/{id}/complete", s.handleCompleteInterview)
	api.HandleFunc("POST /interviews/{id}/cancel", s.handleCancelInterview)

	// Job postings
	api.HandleFunc("GET /job-postings", s.handleListJobPostings)
	api.HandleFunc("POST /job-postings", s.handleCreateJobPosting)
	api.HandleFunc("GET /job-postings/{id}", s.handleGetJobPosting)
	api.HandleFunc("PUT /job-postings/{id}", s.handleUpdateJobPosting)
	api.HandleFunc("DELETE /job-postings/{id}", s.handleDeleteJobPosting)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	mux.Handle("/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator(), types.RoleAdmin)(api))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streamed responses working through the logging middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
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
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID uses the peer IP. Forwarded headers are ignored because
// they are client-controlled.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.log.Warn("rate limit exceeded", "path", r.URL.Path, "method", r.Method, "limit", info.Limit)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
