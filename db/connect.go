package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/kristjanb/petition/cliparse"
)

// Connect opens the pooled database handle and verifies connectivity with
// a ping. TLS verification is disabled only in development; any other
// environment requires it. A connection string that already carries an
// sslmode is left untouched.
//
// Callers must treat a returned error as fatal: the process should not
// serve requests over a pool that never came up.
func Connect(cfg cliparse.Config) (*sql.DB, error) {
	dsn, err := withSSLMode(cfg.DatabaseURL, cfg.Development())
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func withSSLMode(rawURL string, development bool) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}

	q := u.Query()
	if strings.TrimSpace(q.Get("sslmode")) == "" {
		if development {
			q.Set("sslmode", "disable")
		} else {
			q.Set("sslmode", "require")
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
