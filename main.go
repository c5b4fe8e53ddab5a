package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"sigtest/config"
	c "sigtest/core"
	l "sigtest/loader"
)

func main() {
	// load in environment variables from .env file, its fine if there isnt one
	cfg, envErr := config.Load()

	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error configuring logger: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env not loaded")
	}

	// single optional positional argument, the returns file
	path := l.DefaultFileName
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(logger, path); err != nil {
		logger.Error().Err(err).Msg("significance test failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, path string) error {
	sc := c.ServiceContext{
		Logger: logger,
	}

	res, err := sc.RunSignificanceTest(path)
	if err != nil {
		return err
	}

	fmt.Println(res.String())
	return nil
}
