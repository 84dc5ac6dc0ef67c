// Command seed fills the database with synthetic signatures for local
// development. Not part of the server's public contract.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kristjanb/petition/cliparse"
	"github.com/kristjanb/petition/db"
	"github.com/kristjanb/petition/seed"
)

func main() {
	var (
		databaseURL = flag.String("d", os.Getenv("DATABASE_URL"), "Database URL")
		environment = flag.String("e", cliparse.EnvDevelopment, "Environment")
		count       = flag.Int("n", 500, "Number of signatures to insert")
		rngSeed     = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	)
	flag.Parse()

	if *databaseURL == "" {
		slog.Error("database URL required (use -d or DATABASE_URL env)")
		os.Exit(1)
	}

	cfg := cliparse.Config{DatabaseURL: *databaseURL, Environment: *environment}

	conn, err := db.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	inserted := 0
	for _, sig := range seed.Generate(seed.NewRNG(*rngSeed), *count) {
		// The seed writes its own INSERT so fixture rows can carry
		// back-dated signing times; the server path always uses NOW().
		_, err := conn.Exec(`
			INSERT INTO signatures (name, nationalId, comment, anonymous, signed)
			VALUES ($1, $2, $3, $4, $5)
		`, sig.Name, sig.NationalID, sig.Comment, sig.Anonymous, sig.Signed)
		if err != nil {
			slog.Error("failed to insert fixture signature", "error", err)
			continue
		}
		inserted++
	}

	slog.Info("seed complete", "inserted", inserted, "requested", *count)
}
