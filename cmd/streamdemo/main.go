// Command streamdemo runs the optional and stream walkthrough scenarios and
// logs their outcomes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/kabu1204/go-stream/internal/config"
	"github.com/kabu1204/go-stream/internal/demo"
	"github.com/kabu1204/go-stream/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(config.NewFlagSet("streamdemo"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "streamdemo:", err)
		return 2
	}

	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "streamdemo:", err)
		return 2
	}

	scenarios, err := demo.Select(cfg.Scenarios)
	if err != nil {
		log.Error().Err(err).Msg("invalid scenario selection")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := demo.Run(ctx, log, scenarios, cfg.Workers)
	if err != nil {
		log.Error().Err(err).Msg("run scenarios")
		return 1
	}
	failed := demo.Failed(results)
	log.Info().Int("total", len(results)).Int("failed", failed).Msg("done")
	if failed > 0 {
		return 1
	}
	return 0
}
