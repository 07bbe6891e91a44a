package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supportbot/cmd"
	"supportbot/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := getConfigs()
	if err != nil {
		return err
	}

	logger, err := newLogger(configs)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err := jobManager.StartAll(ctx); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		ClassifierURL:     os.Getenv("CLASSIFIER_URL"),
		ClassifierTimeout: os.Getenv("CLASSIFIER_TIMEOUT"),
		ProbeSchedule:     os.Getenv("PROBE_SCHEDULE"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
	}.WithDefaults()

	if err := config.Validate(); err != nil {
		return cmd.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func newLogger(configs cmd.Config) (*zap.Logger, error) {
	level, err := configs.ZapLevel()
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *zap.Logger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server is listening", zap.String("addr", configs.ListenAddr()))
		serveErr <- e.Start(configs.ListenAddr())
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
