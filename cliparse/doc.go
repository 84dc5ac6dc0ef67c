/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded before environment
variables are read, so local development can keep DATABASE_URL out of the
shell.

# Settings

  - DATABASE_URL (-d): PostgreSQL connection string (required)
  - PORT (-p): server port (default: 3000)
  - ENVIRONMENT (-e): "development" disables TLS verification on the
    database connection; any other value enforces it (default: development)
*/
package cliparse
