package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/cache"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/platform/metrics"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	servePort    int
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := openDatabase(connectCtx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	if serveMigrate {
		applied, err := client.Migrate(connectCtx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("applied %d migrations", len(applied))
	}

	deps := appDeps{Config: cfg, DB: client}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		if err := deps.Metrics.RegisterDB(client.DB().DB, "jobly"); err != nil {
			log.Warn("database pool metrics disabled: %v", err)
		}
	}

	if cfg.Cache.Redis.Enabled {
		storage, err := cache.NewRedisStorage(cache.RedisConfig{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			Database: cfg.Cache.Redis.Database,
			PoolSize: cfg.Cache.Redis.PoolSize,
			Prefix:   cfg.Cache.Prefix,
		})
		if err != nil {
			return err
		}
		defer storage.Close()
		deps.Limiter = storage
	}

	app := buildApp(deps)
	return listen(ctx, app, cfg.Server.Addr())
}

// listen serves until ctx is cancelled, then drains in-flight requests.
func listen(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("jobly listening on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
