// Package server initializes and runs the wallboard application: it wires
// the database-backed services and the agent registry into the HTTP API,
// handles OS signals, and releases resources on shutdown. All shared state
// (database handle, agent cache) lives on the App object built here; there
// are no package-level globals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wallboard/internal/agent"
	"wallboard/internal/logging"
	"wallboard/internal/server/config"
	"wallboard/internal/server/httpapi"
	"wallboard/internal/server/repositories/repomanager"
	"wallboard/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	repoManager   repomanager.RepositoryManager
	userService   *services.UserService
	postService   *services.PostService
	statusService *services.StatusService
	registry      *agent.Registry
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(rm.Users(), c)
	ps := services.NewPostService(rm.Posts(), rm.Users())
	ss := services.NewStatusService(rm.Status())

	registry := agent.NewRegistry(agent.Config{
		BaseURL: c.AgentBaseURL,
		Model:   c.AgentModel,
		APIKey:  c.AgentAPIKey,
	})

	return &App{
		config:        c,
		logger:        logger,
		repoManager:   rm,
		userService:   us,
		postService:   ps,
		statusService: ss,
		registry:      registry,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	srv := httpapi.NewServer(
		app.config.Address,
		app.logger,
		app.userService,
		app.postService,
		app.statusService,
		app.registry,
	)

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err.Error())
	}

	app.logger.Info(ctx, "Shutdown complete")
}
