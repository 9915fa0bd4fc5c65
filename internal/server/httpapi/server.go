// Package httpapi exposes the public HTTP/JSON API: registration and login,
// wall posts, status checks, and the two agent endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"wallboard/internal/agent"
	"wallboard/internal/logging"
	"wallboard/internal/server/models"
)

// Service interfaces are declared on the consumer side so handlers can be
// tested against fakes.

type userService interface {
	Register(ctx context.Context, username, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type postService interface {
	Create(ctx context.Context, wallOwner, author, content string) (*models.Post, error)
	ListWall(ctx context.Context, username string) ([]*models.Post, error)
}

type statusService interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]*models.StatusCheck, error)
}

type agentProvider interface {
	GetOrCreate(t agent.Type) (agent.Agent, error)
}

type Server struct {
	address string
	logger  logging.Logger
	users   userService
	posts   postService
	status  statusService
	agents  agentProvider
}

func NewServer(address string, l logging.Logger, us userService, ps postService, ss statusService, ap agentProvider) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   us,
		posts:   ps,
		status:  ss,
		agents:  ap,
	}
}

// Router assembles the chi routing tree for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(s.withAccessLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)

		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.With(s.requireAuth).Post("/posts", s.handleCreatePost)
		r.Get("/posts/{username}", s.handleGetWall)
		r.Get("/users", s.handleListUsers)

		r.Post("/status", s.handleCreateStatus)
		r.Get("/status", s.handleListStatus)

		r.Post("/chat", s.handleChat)
		r.Post("/search", s.handleSearch)
		r.Get("/agents/capabilities", s.handleAgentCapabilities)
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts the listener down.
// Shutdown does not wait for in-flight agent or database calls beyond a
// short drain window; it releases the port and returns.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
