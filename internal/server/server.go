// Package server собирает HTTP API sandbox-платформы: роутер chi, middleware и handlers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/internal/server/handlers"
	"github.com/iudanet/studysync/internal/server/middleware"
	"github.com/iudanet/studysync/internal/server/storage"
)

// Значения по умолчанию для лимита выдачи токенов
const (
	DefaultTokenRate   = 10
	DefaultTokenWindow = time.Minute
	shutdownTimeout    = 5 * time.Second
	healthPath         = "/api/v1/health"
)

// Options зависимости и настройки сервера
type Options struct {
	Logger      *slog.Logger
	Users       storage.UserStorage
	Studies     storage.StudyStorage
	DB          handlers.SchemaVersioner // может быть nil
	Version     string
	JWT         handlers.JWTConfig
	FeePercent  decimal.Decimal
	TokenRate   int
	TokenWindow time.Duration
}

// Server HTTP сервер sandbox-платформы
type Server struct {
	logger  *slog.Logger
	router  chi.Router
	limiter *middleware.RateLimiter
}

// New собирает роутер. Close нужно вызвать, чтобы остановить фоновые горутины
func New(opts Options) *Server {
	if opts.TokenRate <= 0 {
		opts.TokenRate = DefaultTokenRate
	}
	if opts.TokenWindow <= 0 {
		opts.TokenWindow = DefaultTokenWindow
	}

	s := &Server{
		logger:  opts.Logger,
		limiter: middleware.NewRateLimiter(opts.TokenRate, opts.TokenWindow, opts.Logger),
	}

	healthHandler := handlers.NewHealthHandler(opts.Logger, opts.Version, opts.DB)
	tokenHandler := handlers.NewTokenHandler(opts.Logger, opts.Users, opts.JWT)
	userHandler := handlers.NewUserHandler(opts.Logger, opts.Users)
	studyHandler := handlers.NewStudyHandler(opts.Logger, opts.Studies, opts.FeePercent)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggingMiddleware(opts.Logger, healthPath))
	r.Use(middleware.RecoveryMiddleware(opts.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "no such endpoint", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.With(s.limiter.Middleware).Post("/sandbox/tokens", tokenHandler.Issue)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(opts.Logger, opts.JWT))

			r.Get("/users/me/", userHandler.Me)
			r.Post("/study-cost-calculator/", studyHandler.Cost)
			r.Post("/studies/", studyHandler.Create)
			r.Get("/studies/{id}/", studyHandler.Get)
			r.Post("/studies/{id}/transition/", studyHandler.Transition)
		})
	})

	s.router = r
	return s
}

// Handler возвращает корневой http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close останавливает rate limiter
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run слушает addr до отмены ctx, затем выполняет graceful shutdown
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve обслуживает запросы на listener до отмены ctx
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", listener.Addr().String()))
		errC <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
