package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/iptdemo/internal/buildinfo"
	"github.com/dmitrijs2005/iptdemo/internal/client/cli"
	"github.com/dmitrijs2005/iptdemo/internal/client/config"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	initSignalHandler(app, cancel)

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "app stopped", "error", err)
		os.Exit(1)
	}
}

// initSignalHandler releases storage and exits on SIGINT/SIGTERM/SIGQUIT.
// The REPL may be blocked reading stdin, so waiting for it is not an option.
func initSignalHandler(app *cli.App, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
		_ = app.Close()
		os.Exit(0)
	}()
}
