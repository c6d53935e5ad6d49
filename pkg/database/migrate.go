package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('customer', 'entrepreneur', 'admin')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS entrepreneurs (
		user_id UUID PRIMARY KEY REFERENCES users(id),
		business_name TEXT NOT NULL,
		bio TEXT,
		category TEXT,
		location TEXT,
		verified BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		entrepreneur_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS product_images (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL,
		position INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES users(id),
		entrepreneur_id UUID NOT NULL REFERENCES users(id),
		product_id UUID NOT NULL REFERENCES products(id),
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY,
		entrepreneur_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT,
		price_range TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES users(id),
		entrepreneur_id UUID NOT NULL REFERENCES users(id),
		service_id UUID NOT NULL REFERENCES services(id),
		status TEXT NOT NULL DEFAULT 'pending',
		details TEXT,
		request_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES users(id),
		entrepreneur_id UUID NOT NULL REFERENCES users(id),
		rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		token UUID UNIQUE NOT NULL,
		user_agent TEXT,
		ip_address TEXT,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema and in-place column migrations. Statements are
// idempotent so it is safe to run at every startup.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	// orders.payment_method predates some deployments; add it when missing.
	hasColumn, err := columnExists(ctx, db, "orders", "payment_method")
	if err != nil {
		return fmt.Errorf("check orders.payment_method: %w", err)
	}
	if !hasColumn {
		if _, err := db.Exec(ctx, `ALTER TABLE orders ADD COLUMN payment_method TEXT`); err != nil {
			return fmt.Errorf("add orders.payment_method: %w", err)
		}
	}

	return nil
}

func columnExists(ctx context.Context, db PgxIface, table, column string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)
	`

	var exists bool
	if err := db.QueryRow(ctx, query, table, column).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
