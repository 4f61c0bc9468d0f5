//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema holds the tables the engine's integration tests exercise. The posts
// and addresses tables carry the uniqueness constraints the engine leans on
// as its TOCTOU backstop; uuids is the append-only identity trail.
const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id    BIGSERIAL PRIMARY KEY,
	slug  TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	CONSTRAINT posts_slug_unique UNIQUE (slug)
);

CREATE TABLE IF NOT EXISTS addresses (
	id                 BIGSERIAL PRIMARY KEY,
	address_calculated TEXT NOT NULL,
	CONSTRAINT addresses_calculated_unique UNIQUE (address_calculated)
);

CREATE TABLE IF NOT EXISTS uuids (
	id           BIGSERIAL PRIMARY KEY,
	uuid         TEXT NOT NULL,
	uuid_type_id INT NOT NULL,
	comment      TEXT,
	created_at   TIMESTAMPTZ NOT NULL,
	created_by   BIGINT NOT NULL
);
`

// PostgresContainer wraps a testcontainers PostgreSQL instance with an open
// connection and the engine's test schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	DSN       string
}

// NewPostgresContainer starts a new PostgreSQL container and applies the
// schema. Prefer Manager.GetPostgres so suites share one instance.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("library"),
		tcpostgres.WithUsername("library"),
		tcpostgres.WithPassword("library"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	// The container is shared via the Manager; Ryuk handles cleanup.
	return &PostgresContainer{Container: container, DB: db, DSN: dsn}
}

// TruncateTables empties the given tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := p.DB.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
