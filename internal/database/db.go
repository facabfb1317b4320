package database

import (
	"context"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, pcfg)
}

// Init creates the schema if missing. Safe to run on every startup.
func Init(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS queries (
	id TEXT PRIMARY KEY,
	requester_name TEXT NOT NULL,
	requester_email TEXT NOT NULL,
	requester_id TEXT,
	category TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	admin_response TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	resolved_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_queries_status ON queries(status);
CREATE INDEX IF NOT EXISTS idx_queries_category ON queries(category);
CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at);
CREATE INDEX IF NOT EXISTS idx_queries_requester_email ON queries(requester_email);

CREATE TABLE IF NOT EXISTS faqs (
	id TEXT PRIMARY KEY,
	question TEXT NOT NULL UNIQUE,
	answer TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	frequency INT NOT NULL DEFAULT 1,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	source_query_id TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE faqs ADD COLUMN IF NOT EXISTS source_query_id TEXT NOT NULL DEFAULT '';
CREATE INDEX IF NOT EXISTS idx_faqs_frequency ON faqs(frequency DESC, created_at ASC);

CREATE TABLE IF NOT EXISTS blocked_emails (
	email TEXT PRIMARY KEY,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS admins (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_h TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
