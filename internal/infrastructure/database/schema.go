package database

import (
	"context"
	"fmt"
	"log"
)

// Schema DDL. UNIQUE constraints back the name/title uniqueness rules so
// that two concurrent creates cannot both pass the pre-insert existence
// check and still both land; the second insert fails with 23505 and is
// surfaced as a typed duplicate error. Foreign keys from books to authors
// and publishers enforce the block-if-referenced delete policy (23503).
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS authors (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name     TEXT NOT NULL UNIQUE,
		birth_date    DATE NOT NULL,
		city_of_birth TEXT NOT NULL,
		email         TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS publishers (
		id                     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name                   TEXT NOT NULL UNIQUE,
		correspondence_address TEXT NOT NULL,
		phone                  TEXT NOT NULL,
		email                  TEXT NOT NULL,
		max_books_registered   INTEGER NOT NULL DEFAULT -1,
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title            TEXT NOT NULL UNIQUE,
		year             INTEGER NOT NULL CHECK (year BETWEEN 1000 AND 9999),
		genre            TEXT NOT NULL,
		page_count       INTEGER NOT NULL CHECK (page_count >= 1),
		author_id        UUID NOT NULL REFERENCES authors(id),
		publisher_id     UUID NOT NULL REFERENCES publishers(id),
		book_cover       TEXT NOT NULL DEFAULT '',
		book_description TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_books_publisher_id ON books(publisher_id)`,
}

// EnsureSchema creates the catalog tables if they do not exist yet.
// Statements are idempotent, so running this on every startup is safe.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema verified")
	return nil
}
