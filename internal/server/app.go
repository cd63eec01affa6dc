// Package server initializes and runs the application server. It wires the
// credential store backend, the token codec and the identity service, handles
// graceful shutdown on OS signals, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/httpapi"
	"github.com/dmitrijs2005/authgate/internal/server/shared/db"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	codec       *auth.Codec
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var m db.RepositoryManager
	if cfg.DatabaseDSN == "" {
		m = db.NewInMemoryRepositoryManager()
	} else {
		var err error
		m, err = db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration, nil)
	us := users.NewService(m.Users(), codec)

	return &App{config: cfg, logger: logger, userService: us, codec: codec}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.codec)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
