// Command server runs the quizflow study API.
//
// Usage:
//
//	server [--config=config.yaml]
//
// Environment variables override values from the YAML file. SIGINT and
// SIGTERM trigger a graceful shutdown that flushes pending study session
// writes.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/yoonbyeo/quizflow/internal/app"
	"github.com/yoonbyeo/quizflow/internal/config"
)

func main() {
	configPath := flag.StringP("config", "c", config.DefaultPath(), "YAML config file (env: "+config.PathEnv+")")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Fatalf("server: %v", err)
	}
}
