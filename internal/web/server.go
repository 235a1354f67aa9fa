package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/knightsbridge/faqsite/internal/attempts"
	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/session"
)

//go:embed static
var staticFiles embed.FS

// Config holds server configuration.
type Config struct {
	Port          int
	AllowAll      bool          // allow all CORS origins (dev mode)
	SecureCookies bool          // mark the session cookie Secure
	SweepInterval time.Duration // how often idle sessions are evicted
}

// Server serves the FAQ page, the extension download and the JSON API.
type Server struct {
	cfg          Config
	sessions     *session.Store
	orchestrator *extension.Orchestrator
	ledger       *attempts.Store
	content      content
	router       chi.Router
	httpServer   *http.Server

	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a server. ledger may be nil, in which case the
// /api/downloads routes are not mounted.
func New(cfg Config, sessions *session.Store, orch *extension.Orchestrator, ledger *attempts.Store) *Server {
	s := &Server{
		cfg:          cfg,
		sessions:     sessions,
		orchestrator: orch,
		ledger:       ledger,
		content:      renderContent(),
		stop:         make(chan struct{}),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: static assets: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	s.registerAPI(r)
	if s.ledger != nil {
		attempts.RegisterRoutes(r, s.ledger)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Get("/ws/status", s.handleStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Get("/", s.handlePage)
			r.Post("/theme", s.handleToggleTheme)
			r.Post("/faq/{id}/toggle", s.handleToggleFAQ)
			r.Post("/instructions/toggle", s.handleToggleInstructions)
			r.Post("/download", s.handleDownload)
		})
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the visitor session store.
func (s *Server) Sessions() *session.Store { return s.sessions }

// Start begins listening on the configured port and evicting idle sessions.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go s.sweepLoop()

	log.Printf("faqsite server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) sweepLoop() {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.sessions.Sweep(); n > 0 {
				log.Printf("web: evicted %d idle sessions", n)
			}
		case <-s.stop:
			return
		}
	}
}
