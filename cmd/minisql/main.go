package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leengari/minisql/internal/config"
	"github.com/leengari/minisql/internal/engine"
	"github.com/leengari/minisql/internal/logging"
	"github.com/leengari/minisql/internal/repl"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Usage)
		return 2
	}
	if cfg.Help {
		fmt.Println(config.Usage)
		return 0
	}

	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
		SeqURL: cfg.SeqURL,
	})
	defer closeFn()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng := engine.New(engine.NewSession(cfg.Quiet))
	eng.AddObserver(engine.NewLoggingObserver())

	slog.Debug("session started", slog.Bool("quiet", cfg.Quiet))
	if err := repl.Run(ctx, eng, os.Stdin, os.Stdout); err != nil {
		slog.Error("session ended", slog.Any("error", err))
		return 1
	}
	return 0
}
