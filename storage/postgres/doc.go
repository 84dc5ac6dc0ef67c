/*
Package postgres implements the storage interfaces over a pooled
PostgreSQL connection.

All statements use positional $n parameters. A unique constraint
violation on insert (code 23505) is mapped to storage.ErrDuplicate;
sql.ErrNoRows on user lookups is mapped to storage.ErrNotFound. Every
other failure wraps the driver error for the caller to log.
*/
package postgres
