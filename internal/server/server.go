package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amapara27/Horizon/internal/server/handler"
	"github.com/amapara27/Horizon/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port        int
	CORSOrigins []string
}

// Handlers aggregates all HTTP handlers that the server needs to register.
type Handlers struct {
	Health    *handler.HealthHandler
	Events    *handler.EventsHandler
	Depth     *handler.DepthHandler
	News      *handler.NewsHandler
	Sentiment *handler.SentimentHandler
	Wallets   *handler.WalletsHandler
	Analysis  *handler.AnalysisHandler
}

// Server is the JSON HTTP API server for the analysis backend.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	logger     *slog.Logger
}

// NewServer creates a new Server with all routes registered on the ServeMux.
// It wires up middleware (request ID, logging, CORS).
func NewServer(cfg Config, handlers Handlers, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	// Health check.
	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)

	// Event listings.
	mux.HandleFunc("GET /api/new-events", handlers.Events.ListNew)
	mux.HandleFunc("GET /api/trending-events", handlers.Events.ListTrending)
	mux.HandleFunc("GET /api/crypto-events", handlers.Events.ListCrypto)

	// Single event and its derived views.
	mux.HandleFunc("GET /api/event/{id}", handlers.Events.GetEvent)
	mux.HandleFunc("GET /api/event/{id}/market-depth", handlers.Depth.MarketDepth)
	mux.HandleFunc("GET /api/event/{id}/order-books", handlers.Depth.OrderBooks)
	mux.HandleFunc("GET /api/event/{id}/news", handlers.News.RelatedNews)
	mux.HandleFunc("GET /api/event/{id}/news-sentiment", handlers.Sentiment.NewsSentiment)
	mux.HandleFunc("GET /api/event/{id}/combined-sentiment", handlers.Sentiment.CombinedSentiment)
	mux.HandleFunc("GET /api/event/{id}/smart-wallets", handlers.Wallets.SmartWallets)
	mux.HandleFunc("GET /api/event/{id}/analysis", handlers.Analysis.Analyze)

	// Build the middleware chain.
	var h http.Handler = mux

	// Apply request logging middleware.
	h = middleware.Logging(logger)(h)

	// Assign request IDs before logging so the logger can include them.
	h = middleware.WithRequestID(h)

	// Apply CORS middleware.
	h = corsMiddleware(cfg.CORSOrigins)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		mux:        mux,
		logger:     logger,
	}
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting",
		slog.String("addr", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// Handler returns the fully wired HTTP handler, for use in tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// corsMiddleware returns middleware that sets CORS headers for the allowed
// origins. If no origins are specified, it defaults to allowing all origins.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				allowed := len(allowedOrigins) == 0 // allow all if none specified
				for _, o := range allowedOrigins {
					if strings.EqualFold(o, "*") || strings.EqualFold(o, origin) {
						allowed = true
						break
					}
				}

				if allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "86400")
				}
			}

			// Handle preflight requests.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
