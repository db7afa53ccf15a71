package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/database"
	"github.com/osse101/aion2-tracker/internal/handler"
	"github.com/osse101/aion2-tracker/internal/ledger"
	"github.com/osse101/aion2-tracker/internal/logger"
	"github.com/osse101/aion2-tracker/internal/metrics"
	"github.com/osse101/aion2-tracker/internal/ranking"
)

// Options configures the listener and admin authentication
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the dependencies the routes are served from
type Services struct {
	DB         database.Pool
	Tables     character.TableSource
	Characters character.Service
	Rankings   ranking.Service
	Ledger     ledger.Service
	Jobs       handler.Enqueuer
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// NewRouter builds the route tree. Middleware runs outermost first.
func NewRouter(opts Options, svc Services) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateMonitorMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB, svc.Tables))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	ledgerHandler := handler.NewLedgerHandler(svc.Ledger)
	adminHandler := handler.NewAdminHandler(svc.Characters, svc.Rankings, svc.Jobs)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/combat", func(r chi.Router) {
			r.Post("/evaluate", handler.HandleEvaluate(svc.Characters))
			r.Post("/caps", handler.HandleApplyCaps(svc.Tables))
		})

		r.Route("/characters", func(r chi.Router) {
			r.Get("/compare", handler.HandleCompare(svc.Characters))
			r.Get("/{id}", handler.HandleGetCharacter(svc.Characters))
			r.Get("/{id}/profile", handler.HandleGetProfile(svc.Characters))
		})

		r.Get("/rankings", handler.HandleLeaderboard(svc.Rankings))
		r.Get("/rankings/export", handler.HandleExportRankings(svc.Rankings))
		r.Get("/tiers", handler.HandleTierList(svc.Rankings))

		r.Route("/ledger", func(r chi.Router) {
			r.Post("/", ledgerHandler.HandleRecord)
			r.Get("/", ledgerHandler.HandleList)
			r.Get("/summary", ledgerHandler.HandleSummary)
			r.Get("/export", ledgerHandler.HandleExport)
			r.Delete("/{id}", ledgerHandler.HandleDelete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Post("/characters", adminHandler.HandleIngest)
			r.Post("/rankings/recalibrate", adminHandler.HandleRecalibrate)
		})
	})

	return r
}

// responseWriter captures the status code for logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware attaches a request ID to the context and response, then
// logs start and completion. Probe and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. http.ErrServerClosed is returned after a clean stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
