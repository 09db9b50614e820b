package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/communityportal/notifier/pkg/chat"
	"github.com/communityportal/notifier/pkg/domain"
	"github.com/communityportal/notifier/pkg/notify"
)

//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher
//go:generate moq -out mocks/instant.go -pkg mocks -skip-ensure -fmt goimports . InstantNotifier
//go:generate moq -out mocks/chat.go -pkg mocks -skip-ensure -fmt goimports . ChatProxy
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsService

// adminUser is the basic auth user for admin endpoints
const adminUser = "admin"

// Server represents HTTP server instance
type Server struct {
	Params

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params defines server dependencies and settings. Chat is optional.
type Params struct {
	Dispatcher      Dispatcher
	InstantNotifier InstantNotifier
	Chat            ChatProxy
	Settings        SettingsService

	Listen        string
	Timeout       time.Duration
	AdminPassword string // admin endpoints are open if empty
	Version       string
	Debug         bool
}

// Dispatcher runs periodic notification passes on demand
type Dispatcher interface {
	RunNow(ctx context.Context, forced bool) (notify.RunResult, error)
}

// InstantNotifier sends single-item notifications
type InstantNotifier interface {
	NotifyInstant(ctx context.Context, itemID int64, itemType domain.ContentType) (notify.InstantResult, error)
}

// ChatProxy answers chat conversations
type ChatProxy interface {
	Complete(ctx context.Context, messages []chat.Message) (string, error)
}

// SettingsService reads and changes notification settings
type SettingsService interface {
	GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error)
	UpdateFrequency(ctx context.Context, freq domain.Frequency) (domain.NotificationSettings, error)
}

// New initializes a new server instance
func New(p Params) *Server {
	if p.Listen == "" {
		p.Listen = ":8080"
	}
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	s := &Server{
		Params: p,
		router: routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.Timeout,
		ReadTimeout:       s.Timeout,
		WriteTimeout:      s.Timeout * 2, // periodic runs and chat completions take a while
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("portal-notifier", "communityportal", s.Version))
	s.router.Use(rest.Ping)

	if s.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// notification handlers called by the portal backend
	s.router.HandleFunc("POST /notify/periodic", s.periodicHandler)
	s.router.HandleFunc("POST /notify/instant", s.instantHandler)
	s.router.HandleFunc("POST /chat", s.chatHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.Group().Route(func(admin *routegroup.Bundle) {
			if s.AdminPassword != "" {
				admin.Use(rest.BasicAuthWithUserPasswd(adminUser, s.AdminPassword))
			}
			admin.HandleFunc("GET /settings/notifications", s.getSettingsHandler)
			admin.HandleFunc("PUT /settings/notifications", s.updateSettingsHandler)
		})
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
