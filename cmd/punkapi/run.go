package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/samvad-hq/punkapi/internal/app"
	"github.com/samvad-hq/punkapi/internal/config"
	"github.com/samvad-hq/punkapi/internal/logger"
)

// run is main without the process: it takes argv, the environment lookup and
// the output streams, and returns the error that decides the exit status.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args)
	switch {
	case errors.Is(err, errHelp):
		usage(stdout)
		return nil
	case err != nil:
		usage(stderr)
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("punkapi starting", "config", cfg)

	lookup, err := app.NewLookup(cfg, log, nil, "punkapi/"+version)
	if err != nil {
		return err
	}

	return lookup.Run(ctx, opts, getenv, stdout)
}
