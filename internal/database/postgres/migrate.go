// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/joblyhq/jobly/internal/pkg/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one embedded schema change.
type Migration struct {
	Version string
	SQL     string
}

// Migrations returns the embedded migrations ordered by file name.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		body, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// Migrate applies every embedded migration not yet recorded in
// schema_migrations. Each migration runs in its own transaction.
func (c *Client) Migrate(ctx context.Context) ([]string, error) {
	if c.schema != "" {
		if _, err := c.db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, c.schema)); err != nil {
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	ledger := c.Table("schema_migrations")
	createLedger := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, ledger)
	if _, err := c.db.ExecContext(ctx, createLedger); err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}

	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range migrations {
		var done bool
		query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE version = $1)`, ledger)
		if err := c.db.GetContext(ctx, &done, query, m.Version); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", m.Version, err)
		}
		if done {
			continue
		}

		err := c.WithTx(ctx, func(ctx context.Context) error {
			exec := c.Executor(ctx)
			if c.schema != "" {
				if _, err := exec.ExecContext(ctx, fmt.Sprintf(`SET LOCAL search_path TO %s`, c.schema)); err != nil {
					return err
				}
			}
			if _, err := exec.ExecContext(ctx, m.SQL); err != nil {
				return err
			}
			_, err := exec.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (version) VALUES ($1)`, ledger), m.Version)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", m.Version, err)
		}

		log.Info("applied migration %s", m.Version)
		applied = append(applied, m.Version)
	}

	return applied, nil
}
