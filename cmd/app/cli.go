package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/bagdasarian/users-service/internal/config"
	"github.com/bagdasarian/users-service/internal/db"
	"github.com/bagdasarian/users-service/internal/handler"
	"github.com/bagdasarian/users-service/internal/handler/server"
	"github.com/bagdasarian/users-service/internal/logger"
	"github.com/bagdasarian/users-service/internal/observability"
	"github.com/bagdasarian/users-service/internal/repository/postgres"
	"github.com/bagdasarian/users-service/internal/service"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CLI - корневая команда; флаги переопределяют значения из окружения
type CLI struct {
	EnvFile   []string         `kong:"name='env-file',short='e',help='Path to .env file (repeatable).'"`
	LogLevel  string           `kong:"short='l',help='Log level: trace, debug, info, warn, error. Overrides LOG_LEVEL.'"`
	LogFormat string           `kong:"help='Log format: console or json. Overrides LOG_FORMAT.'"`
	Serve     ServeCmd         `kong:"cmd,default='1',help='Run HTTP server (default).'"`
	List      ListCmd          `kong:"cmd,help='Print all users as JSON.'"`
	Version   kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

func (cli *CLI) setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cli.EnvFile...)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr), nil
}

func newUserService(database *sql.DB) service.UserService {
	return service.NewUserService(postgres.NewUserRepository(database))
}

type ServeCmd struct{}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg, log, err := cli.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("connected to database")

	h := handler.NewHandler(newUserService(database), database, log)
	router := server.NewRouter(h, server.RouterOptions{
		RateLimit: cfg.HTTP.RateLimit,
		Metrics:   observability.NewMetrics(),
		Logger:    log,
	})
	srv := server.NewServer(router, cfg.HTTP, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

type ListCmd struct {
	Indent bool `kong:"help='Indent JSON output.'"`
}

func (c *ListCmd) Run(cli *CLI) error {
	cfg, _, err := cli.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	return c.print(ctx, newUserService(database), os.Stdout)
}

func (c *ListCmd) print(ctx context.Context, userService service.UserService, w io.Writer) error {
	users, err := userService.FindAll(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(handler.NewListUsersResponse(users))
}
