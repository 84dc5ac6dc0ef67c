package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Petition signatures, one row per signer
CREATE TABLE IF NOT EXISTS signatures (
    id SERIAL PRIMARY KEY,
    name VARCHAR(128) NOT NULL,
    nationalId VARCHAR(10) NOT NULL UNIQUE,
    comment VARCHAR(400) NOT NULL DEFAULT '',
    anonymous BOOLEAN NOT NULL DEFAULT FALSE,
    signed TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_signatures_signed ON signatures(signed DESC);

-- Administrators, provisioned out-of-band
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(64) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL
);
`
