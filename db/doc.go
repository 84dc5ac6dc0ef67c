/*
Package db owns the database connection and schema.

# Connecting

	conn, err := db.Connect(cfg)
	if err != nil {
		// fatal: never serve over a pool that failed to come up
	}
	defer conn.Close()

Connect appends sslmode=disable in development and sslmode=require
otherwise, unless the connection string already specifies one, then
verifies the pool with a ping.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - signatures: one row per petition signer; nationalId is UNIQUE so the
    same person cannot sign twice
  - users: administrator credentials (bcrypt hashes), provisioned
    out-of-band

All statements elsewhere in the codebase run against the pooled *sql.DB
with positional $n parameters; values are never interpolated into SQL
text.
*/
package db
