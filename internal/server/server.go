package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LootDrop_Go/internal/database"
	"github.com/osse101/LootDrop_Go/internal/handler"
	"github.com/osse101/LootDrop_Go/internal/logger"
	"github.com/osse101/LootDrop_Go/internal/metrics"
	"github.com/osse101/LootDrop_Go/internal/simulator"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string // admin routes are not mounted when empty
	TrustedProxies []string
	MaxBodyBytes   int64
	Storage        string
	DBPool         database.Pool // must be an untyped nil for in-memory storage
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc simulator.Service) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	tracker := NewClientTracker(RateLimitWindow, MaxTrackedClients, RateLimitMaxRequests)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DBPool, opts.Storage))

	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	lootHandler := handler.NewLootHandler(svc)
	sessionHandler := handler.NewSessionHandler(svc)
	adminHandler := handler.NewAdminHandler(svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/loot", func(r chi.Router) {
			r.Get("/chances", lootHandler.HandleGetChances)
			r.Get("/chests", lootHandler.HandleGetChests)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.HandleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", sessionHandler.HandleEndSession)
				r.Post("/open", sessionHandler.HandleOpenChest)
				r.Post("/roll", sessionHandler.HandleRoll)
				r.Get("/stats", sessionHandler.HandleGetStats)
				r.Post("/reset", sessionHandler.HandleResetSession)
				r.Get("/history", sessionHandler.HandleGetHistory)
			})
		})

		if opts.APIKey != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, tracker))
				r.Post("/reload-catalog", adminHandler.HandleReloadCatalog)
			})
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{logger.RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", statusOf(ww),
			"bytes", ww.BytesWritten(),
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// statusOf reports 200 for handlers that wrote a body without an explicit status
func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
