// Command token mints an access token for an existing learner. It is meant
// for local development and smoke tests against a running server.
//
// Usage:
//
//	token --email=learner@example.com [--ttl=24h] [--config=config.yaml]
//
// Reads the same configuration as the server (AUTH_*, DATABASE_DSN).
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	flag "github.com/spf13/pflag"

	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/app"
	"github.com/yoonbyeo/quizflow/internal/auth"
	"github.com/yoonbyeo/quizflow/internal/config"
)

func main() {
	email := flag.String("email", "", "email of the learner")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	configPath := flag.StringP("config", "c", config.DefaultPath(), "YAML config file (env: "+config.PathEnv+")")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --email=learner@example.com")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var userID uuid.UUID
	err = pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, *email).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Fatalf("no user with email %s", *email)
	}
	if err != nil {
		log.Fatalf("look up user: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime, clockwork.NewRealClock())
	token, err := jwt.GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
