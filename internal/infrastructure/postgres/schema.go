package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si faltan. Es el paso explícito e idempotente
// de migración (cmd/migrate); el esquema conserva el contrato de columnas
// del libro de fiado.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL,
			phone   TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL,
			type    TEXT NOT NULL DEFAULT 'normal'
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id TEXT PRIMARY KEY,
			customer_id    TEXT NOT NULL,
			item_name      TEXT NOT NULL,
			quantity       INTEGER NOT NULL,
			price          NUMERIC(14,2) NOT NULL,
			date           TIMESTAMPTZ NOT NULL,
			type           TEXT NOT NULL,
			amount         NUMERIC(14,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_customer ON transactions (customer_id)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
