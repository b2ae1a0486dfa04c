package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.llib.dev/frameless/pkg/env"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var c Config
	if err := env.Load(&c); err != nil {
		log.Fatal().Err(err).Msg("failed to load the configuration")
	}

	if err := execute(newCommand(&c)); err != nil {
		os.Exit(1)
	}
}
