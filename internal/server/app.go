// Package server initializes and runs the users API: it opens the
// database, optionally applies migrations, builds the services and serves
// HTTP until the process is signalled.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/usersapi/internal/dbx"
	"github.com/dmitrijs2005/usersapi/internal/logging"
	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/dmitrijs2005/usersapi/internal/server/config"
	"github.com/dmitrijs2005/usersapi/internal/server/httpapi"
	"github.com/dmitrijs2005/usersapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usersapi/internal/server/services"
	"github.com/jmoiron/sqlx"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sqlx.DB
	tokens      *auth.TokenService
	userService *services.UserService
}

// NewApp wires the application from c. Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {

	logger, err := logging.NewJSON(w, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	tokens, err := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	db, err := dbx.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if c.RunMigrations {
		logger.Info(ctx, "Applying migrations...")
		if err := rm.RunMigrations(ctx, db.DB); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	us := services.NewUserService(db, rm)

	return &App{config: c, logger: logger, db: db, tokens: tokens, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is done or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.tokens, app.config.AllowedOrigins)

	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
