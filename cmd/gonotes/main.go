// Package main реализует точку входа сервиса заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpServer "gonotes/internal/api/http"
	authpg "gonotes/internal/auth/adapters/postgres"
	authservices "gonotes/internal/auth/adapters/services"
	authapp "gonotes/internal/auth/app"
	"gonotes/internal/config"
	notescache "gonotes/internal/notes/adapters/cache"
	notespg "gonotes/internal/notes/adapters/postgres"
	notesapp "gonotes/internal/notes/app"
	notescacheport "gonotes/internal/notes/ports/cache"
	"gonotes/pkg/db/postgres"
	"gonotes/pkg/logger"
	"gonotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "GONOTES_LOGGER_MODE"
	EnvLoggerLevel = "GONOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrRunMigrations        = "failed to run database migrations"
	ErrInitServices         = "failed to initialize auth services"
	ErrBootstrapAdmin       = "failed to bootstrap admin user"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing Redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitCache           = "initializing note cache"
	LogBootstrapAdmin      = "ensuring admin user exists"
	LogBootstrapSkipped    = "admin bootstrap disabled, skipping"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

// migrationsPath - источник SQL миграций.
const migrationsPath = "file://migrations"

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

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRepo)
		userRepo := authpg.NewUserRepository(database.Pool())
		noteRepo := notespg.NewNoteRepository(database.Pool())

		log.Info(ctx, LogInitServices)
		serviceFactory, err := authservices.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.Algorithm,
			cfg.JWT.GetAccessTokenTTL(),
			cfg.JWT.BCryptCost,
		)
		if err != nil {
			log.Error(ctx, ErrInitServices, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		authUseCase := authapp.NewAuthUseCase(userRepo, serviceFactory.PasswordService(), serviceFactory.TokenService())
		gate := authapp.NewAuthGate(userRepo, serviceFactory.TokenService())

		var noteCache notescacheport.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			noteCache, err = notescache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
		}

		noteUseCase := notesapp.NewNoteUseCase(noteRepo, noteCache, cfg.Notes.StrictOwnership, cfg.Notes.DefaultLimit)

		if cfg.Bootstrap.Enabled {
			log.Info(ctx, LogBootstrapAdmin, zap.String("username", cfg.Bootstrap.AdminUsername))
			if err := authUseCase.EnsureAdminUser(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
				log.Error(ctx, ErrBootstrapAdmin, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
		} else {
			log.Info(ctx, LogBootstrapSkipped)
		}

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(app, authUseCase, gate, noteUseCase, cfg.CORS.GetAllowedOrigins())

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.Shutdown()
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				if noteCache == nil {
					return nil
				}
				log.Info(ctx, LogClosingCache)
				return noteCache.Close()
			},
			// Закрытие пула соединений с БД.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
