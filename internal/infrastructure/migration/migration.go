package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	// SQL is the statement Up executes.
	SQL string
	Up  func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists every schema step in the order it must run. Each step is
// idempotent so the whole list runs on every startup.
var Migrations = []Migration{
	step("create_users", createUsers),
	step("create_resumes", createResumes),
	step("index_resumes_by_user", indexResumesByUser),
}

func step(name, query string) Migration {
	return Migration{Name: name, SQL: query, Up: exec(query)}
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations", "count", len(Migrations))

	for _, m := range Migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

func exec(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}

const createUsers = `
	CREATE TABLE IF NOT EXISTS users (
		id               UUID PRIMARY KEY,
		email            TEXT NOT NULL UNIQUE,
		password_hash    TEXT,
		google_id        TEXT UNIQUE,
		name             TEXT NOT NULL DEFAULT '',
		experience_level TEXT CHECK (experience_level IN ('entry-level', 'intermediate', 'advanced')),
		reset_token_hash TEXT,
		reset_expires    TIMESTAMPTZ,
		last_login       TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const createResumes = `
	CREATE TABLE IF NOT EXISTS resumes (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		template_id TEXT NOT NULL,
		content     JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const indexResumesByUser = `
	CREATE INDEX IF NOT EXISTS resumes_user_updated_idx ON resumes (user_id, updated_at DESC);
`
