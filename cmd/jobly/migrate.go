package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/platform/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		client, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		applied, err := client.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if len(applied) == 0 {
			log.Info("database is up to date")
			return nil
		}
		for _, name := range applied {
			log.Info("applied migration %s", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func openDatabase(ctx context.Context, cfg *config.Config) (*postgres.Client, error) {
	pg := cfg.Database.Postgres
	return postgres.NewClient(ctx, &postgres.Config{
		Host:               pg.Host,
		Port:               pg.Port,
		Username:           pg.Username,
		Password:           pg.Password,
		Database:           pg.Database,
		DSN:                pg.DSN,
		SSLMode:            pg.SSLMode,
		Schema:             pg.Schema,
		ConnectTimeout:     10,
		MaxOpenConnections: pg.MaxOpenConns,
		MaxIdleConnections: pg.MaxIdleConns,
		MaxLifetime:        pg.ConnMaxLifetime,
	})
}
