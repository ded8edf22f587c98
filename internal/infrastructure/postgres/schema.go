package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente das tabelas da aplicação. As constraints únicas
// são a rede de segurança de concorrência: (quote_id, barcode),
// (company_id, barcode), email e token.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id             TEXT PRIMARY KEY,
	company_id     TEXT NOT NULL REFERENCES companies(id),
	name           TEXT NOT NULL,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	role           TEXT NOT NULL CHECK (role IN ('admin', 'employee')),
	active         BOOLEAN NOT NULL DEFAULT TRUE,
	last_login_at  TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS quotes (
	id          TEXT PRIMARY KEY,
	company_id  TEXT NOT NULL REFERENCES companies(id),
	user_id     TEXT NOT NULL REFERENCES users(id),
	title       TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS quote_items (
	id                  TEXT PRIMARY KEY,
	quote_id            TEXT NOT NULL REFERENCES quotes(id),
	company_id          TEXT NOT NULL REFERENCES companies(id),
	barcode             TEXT NOT NULL,
	product_name        TEXT NOT NULL,
	quantity            INTEGER NOT NULL CHECK (quantity > 0),
	updated_by_user_id  TEXT NOT NULL REFERENCES users(id),
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (quote_id, barcode)
);

CREATE TABLE IF NOT EXISTS product_catalog (
	id            TEXT PRIMARY KEY,
	company_id    TEXT NOT NULL REFERENCES companies(id),
	barcode       TEXT NOT NULL,
	product_name  TEXT NOT NULL,
	last_used_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (company_id, barcode)
);

CREATE TABLE IF NOT EXISTS shares (
	id          TEXT PRIMARY KEY,
	quote_id    TEXT NOT NULL REFERENCES quotes(id),
	token       TEXT NOT NULL UNIQUE,
	expires_at  TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_quotes_company_created ON quotes (company_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_quote_items_quote ON quote_items (quote_id);
CREATE INDEX IF NOT EXISTS idx_product_catalog_company ON product_catalog (company_id);
CREATE INDEX IF NOT EXISTS idx_shares_quote ON shares (quote_id);
`

// Migrate aplica o schema no startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
