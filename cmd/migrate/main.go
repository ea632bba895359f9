// Command migrate applies the embedded goose migrations to PostgreSQL.
//
// Usage:
//
//	migrate [--dsn=postgres://...] [--timeout=1m] up|down|status|version
//
// The DSN defaults to the DATABASE_DSN environment variable.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	flag "github.com/spf13/pflag"

	"github.com/yoonbyeo/quizflow/migrations"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [flags] up|down|status|version")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *dsn == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *dsn, flag.Arg(0)); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(ctx context.Context, dsn, command string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			log.Printf("applied %s (%s)", r.Source.Path, r.Duration)
		}
		return err
	case "down":
		r, err := provider.Down(ctx)
		if r != nil {
			log.Printf("rolled back %s", r.Source.Path)
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			log.Printf("%-40s %s", s.Source.Path, applied)
		}
		return nil
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		log.Printf("version %d", v)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
