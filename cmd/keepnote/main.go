// Package main реализует точку входа сервиса keepnote.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpadapter "keepnote/internal/keepnote/adapters/http"
	"keepnote/internal/keepnote/adapters/postgres"
	"keepnote/internal/keepnote/adapters/sessions"
	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/config"
	pgdb "keepnote/pkg/db/postgres"
	redisdb "keepnote/pkg/db/redis"
	"keepnote/pkg/logger"
	"keepnote/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "KEEPNOTE_LOGGER_MODE"
	EnvLoggerLevel = "KEEPNOTE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to initialize Redis client"
	ErrStartHTTP            = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "keepnote service started"
	LogServiceShutdownDone = "keepnote service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing Redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitSessions        = "initializing session store"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

// Путь к миграциям базы данных.
const migrationsPath = "file://migrations/keepnote"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		if err := pgdb.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := pgdb.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redisdb.NewClient(ctx, cfg.Redis.ToClientConfig())
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		categoryRepo := repoFactory.CategoryRepository()
		reminderRepo := repoFactory.ReminderRepository()
		noteRepo := repoFactory.NoteRepository()

		log.Info(ctx, LogInitSessions)
		sessionStore := sessions.NewRedisStore(redisClient, cfg.Session.TTL)

		log.Info(ctx, LogInitUseCases)
		userUseCase := app.NewUserUseCase(userRepo)
		authUseCase := app.NewAuthUseCase(userUseCase, sessionStore)
		categoryUseCase := app.NewCategoryUseCase(categoryRepo)
		reminderUseCase := app.NewReminderUseCase(reminderRepo)
		noteUseCase := app.NewNoteUseCase(noteRepo, categoryRepo, reminderRepo)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpadapter.SetupRouter(fiberApp, httpadapter.RouterDeps{
			Auth:       authUseCase,
			Users:      userUseCase,
			Categories: categoryUseCase,
			Reminders:  reminderUseCase,
			Notes:      noteUseCase,

			SessionStore:  sessionStore,
			SessionCookie: cfg.Session.CookieName,
			SessionTTL:    cfg.Session.TTL,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTP, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return redisClient.Close()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
