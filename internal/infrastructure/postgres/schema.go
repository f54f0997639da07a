package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements DDL idempotente de la base. Los índices únicos van
// nombrados porque mapUniqueViolation traduce por nombre de constraint.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		business_name TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (lower(email))`,

	`CREATE TABLE IF NOT EXISTS products (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		sku             TEXT NOT NULL,
		cost_price      NUMERIC(12,2) NOT NULL DEFAULT 0,
		retail_price    NUMERIC(12,2) NOT NULL DEFAULT 0,
		wholesale_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		stock           INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		min_stock       INTEGER NOT NULL DEFAULT 0,
		category        TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS products_user_name_key ON products (user_id, lower(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS products_sku_key ON products (sku)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL DEFAULT 'retail',
		email           TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		address         TEXT NOT NULL DEFAULT '',
		total_purchases NUMERIC(12,2) NOT NULL DEFAULT 0,
		credit          NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS customers_user_idx ON customers (user_id)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		number        TEXT NOT NULL,
		business_name TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		customer_type TEXT NOT NULL,
		subtotal      NUMERIC(12,2) NOT NULL,
		tax_amount    NUMERIC(12,2) NOT NULL,
		total         NUMERIC(12,2) NOT NULL,
		profit        NUMERIC(12,2) NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending',
		due_date      TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS invoices_user_idx ON invoices (user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS invoice_items (
		id           TEXT PRIMARY KEY,
		invoice_id   TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		product_id   TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity     INTEGER NOT NULL CHECK (quantity > 0),
		cost_price   NUMERIC(12,2) NOT NULL,
		sale_price   NUMERIC(12,2) NOT NULL,
		profit       NUMERIC(12,2) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS invoice_items_invoice_idx ON invoice_items (invoice_id)`,

	`CREATE TABLE IF NOT EXISTS stock_movements (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id   TEXT NOT NULL,
		product_name TEXT NOT NULL,
		type         TEXT NOT NULL CHECK (type IN ('in', 'out')),
		quantity     INTEGER NOT NULL CHECK (quantity > 0),
		reason       TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS stock_movements_user_idx ON stock_movements (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS stock_movements_product_idx ON stock_movements (product_id, created_at)`,
}

// Migrate aplica el DDL completo. Idempotente: seguro de correr en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar schema: %w", err)
		}
	}
	return nil
}
