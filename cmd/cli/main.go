package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bookhubb/bookhub/internal/buildinfo"
	"github.com/bookhubb/bookhub/internal/client/cli"
	"github.com/bookhubb/bookhub/internal/client/config"
	"github.com/bookhubb/bookhub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
