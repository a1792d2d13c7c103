package testutil

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joblyhq/jobly/internal/database/postgres"
)

// NewIsolatedPostgres connects to the test database with a schema of its
// own, applies migrations, and drops the schema on cleanup. Skips unless
// RUN_DB_TESTS=1.
func NewIsolatedPostgres(t *testing.T) *postgres.Client {
	t.Helper()

	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	uniqueSuffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16]
	schema := fmt.Sprintf("test_%s_%s", SanitizeTestName(t.Name()), uniqueSuffix)

	ctx := context.Background()
	client, err := postgres.NewClient(ctx, &postgres.Config{
		Host:               envOr("POSTGRES_HOST", "localhost"),
		Port:               envIntOr("POSTGRES_PORT", 5432),
		Username:           envOr("POSTGRES_USERNAME", "postgres"),
		Password:           envOr("POSTGRES_PASSWORD", "postgres"),
		Database:           envOr("POSTGRES_DATABASE", "jobly_test"),
		SSLMode:            "disable",
		Schema:             schema,
		ConnectTimeout:     10,
		MaxOpenConnections: 5,
	})
	if err != nil {
		t.Skipf("postgres not available, skipping: %v", err)
	}

	if _, err := client.Migrate(ctx); err != nil {
		client.Close()
		t.Fatalf("Failed to migrate test schema %s: %v", schema, err)
	}

	t.Cleanup(func() {
		_, _ = client.DB().ExecContext(context.Background(), fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`, schema))
		client.Close()
	})

	return client
}

// NewMockClient returns a client backed by sqlmock.
func NewMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return postgres.NewClientFromDB(sqlx.NewDb(db, "postgres"), ""), mock
}

// SanitizeTestName sanitizes a test name for use as a database identifier
func SanitizeTestName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, " ", "_")
	reg := regexp.MustCompile(`[^a-zA-Z0-9_]+`)
	name = strings.ToLower(reg.ReplaceAllString(name, ""))

	// PostgreSQL identifiers are capped at 63 bytes; the prefix and suffix use 22.
	const maxTestNameLength = 41
	if len(name) > maxTestNameLength {
		name = name[:maxTestNameLength]
	}

	return name
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
