// Package api exposes the credit engine over a JSON HTTP API.
package api

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/gofiber/fiber/v2"
)

// Server wires HTTP routes to an engine.
type Server struct {
	engine  *engine.Engine
	app     *fiber.App
	version string
}

// NewServer builds the fiber app and registers every route.
func NewServer(e *engine.Engine, version string) *Server {
	s := &Server{
		engine:  e,
		version: version,
		app: fiber.New(fiber.Config{
			AppName:               "credit",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          10 * time.Second,
		}),
	}

	s.app.Use(requestLogger)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Get("/health", s.handleHealth)
	api.Get("/snapshot", s.handleSnapshot)
	api.Get("/score", s.handleScore)
	api.Get("/offers", s.handleOffers)
	api.Get("/insights", s.handleInsights)
	api.Get("/transactions", s.handleListTransactions)
	api.Post("/transactions", s.handleAddTransaction)
	api.Get("/consent", s.handleGetConsent)
	api.Put("/consent/:key", s.handleUpdateConsent)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	slog.Info("Starting API server", "addr", addr)
	return s.app.Listen(addr)
}

// ListenTLS serves HTTPS on addr with cert until Shutdown is called.
func (s *Server) ListenTLS(addr string, cert tls.Certificate) error {
	slog.Info("Starting API server", "addr", addr, "tls", true)
	return s.app.ListenTLSWithCertificate(addr, cert)
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	slog.Info("HTTP request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start))
	return err
}
