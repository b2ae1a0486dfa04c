package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Config is loaded from the environment first, and the command line flags override it.
type Config struct {
	LogLevel     string        `env:"ITERVIEW_LOG_LEVEL" enum:"trace;debug;info;warn;error;disabled;" default:"info"`
	Engine       string        `env:"ITERVIEW_ENGINE" enum:"regexp2;re2;literal;" default:"regexp2"`
	MatchTimeout time.Duration `env:"ITERVIEW_MATCH_TIMEOUT" default:"1s"`
	IntType      string        `env:"ITERVIEW_INT_TYPE" enum:"int;int8;int16;int32;int64;uint;uint8;uint16;uint32;uint64;" default:"int"`
}

func newRootCmd(c *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "iterview",
		Short:         "Lazy ranges, string splitting and ordered map views",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(c.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("running")
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.LogLevel, "log-level", c.LogLevel, `verbosity of logging ("trace", "debug", "info", "warn", "error", "disabled")`)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return rootCmd
}

func newCommand(c *Config) *cobra.Command {
	rootCmd := newRootCmd(c)
	registerRangeCmd(rootCmd, c)
	registerSplitCmd(rootCmd, c)
	registerMapCmd(rootCmd, c)
	return rootCmd
}

// execute runs the command and logs the error, if any.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}
