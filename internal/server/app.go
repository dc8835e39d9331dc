// Package server initializes and runs the application: it wires config,
// logging, the database, migrations, services, and the HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/nick-0037/workout-tracker-api/internal/logging"
	"github.com/nick-0037/workout-tracker-api/internal/server/auth"
	"github.com/nick-0037/workout-tracker-api/internal/server/config"
	"github.com/nick-0037/workout-tracker-api/internal/server/hashing"
	"github.com/nick-0037/workout-tracker-api/internal/server/httpapi"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/repomanager"
	"github.com/nick-0037/workout-tracker-api/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	tokenCodec      *auth.TokenCodec
	authService     *services.AuthService
	exerciseService *services.ExerciseService
	workoutService  *services.WorkoutService
}

// NewApp wires every collaborator explicitly: config, logger, database
// (pinged with bounded backoff so a starting Postgres container has time to
// come up), migrations, repositories, services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	codec := auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	hasher := hashing.ForScheme(cfg.HashScheme, []byte(cfg.SecretKey))

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		tokenCodec:      codec,
		authService:     services.NewAuthService(db, rm, hasher, codec),
		exerciseService: services.NewExerciseService(db, rm),
		workoutService:  services.NewWorkoutService(db, rm),
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.authService, app.exerciseService, app.workoutService, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, h, app.tokenCodec)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until an OS signal or a fatal server error cancels the context,
// then closes the database.
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

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
