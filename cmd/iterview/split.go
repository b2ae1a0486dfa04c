package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.llib.dev/iterview/pkg/splitkit"
)

var engines = map[string]splitkit.Engine{
	"regexp2": splitkit.Regexp2{},
	"re2":     splitkit.RE2{},
	"literal": splitkit.Literal{},
}

type splitFlags struct {
	IgnoreCase bool
	Multiline  bool
	Singleline bool
	Limit      int
	Quote      bool
}

func registerSplitCmd(rootCmd *cobra.Command, c *Config) {
	var f splitFlags
	splitCmd := &cobra.Command{
		Use:   "split SUBJECT PATTERN",
		Short: "Print the tokens between the matches of PATTERN in SUBJECT, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.OutOrStdout(), args[0], args[1], c.Engine, c.MatchTimeout, f)
		},
	}
	splitCmd.Flags().StringVar(&c.Engine, "engine", c.Engine, `pattern engine ("regexp2", "re2", "literal")`)
	splitCmd.Flags().DurationVar(&c.MatchTimeout, "timeout", c.MatchTimeout, "timeout of a single delimiter lookup (regexp2 only)")
	splitCmd.Flags().BoolVarP(&f.IgnoreCase, "ignore-case", "i", false, "case insensitive matching")
	splitCmd.Flags().BoolVarP(&f.Multiline, "multiline", "m", false, "^ and $ match at line boundaries")
	splitCmd.Flags().BoolVarP(&f.Singleline, "singleline", "s", false, ". matches new lines as well")
	splitCmd.Flags().IntVarP(&f.Limit, "limit", "n", 0, "maximum number of tokens, the last one holds the remainder")
	splitCmd.Flags().BoolVarP(&f.Quote, "quote", "q", false, "print the tokens as quoted Go strings")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(w io.Writer, subject, pattern, engine string, timeout time.Duration, f splitFlags) error {
	e, ok := engines[engine]
	if !ok {
		return fmt.Errorf("unknown engine: %q", engine)
	}
	var flags regexp2.RegexOptions = regexp2.ECMAScript
	if f.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	if f.Multiline {
		flags |= regexp2.Multiline
	}
	if f.Singleline {
		flags |= regexp2.Singleline
	}

	s, err := splitkit.New(subject, pattern,
		splitkit.WithEngine(e),
		splitkit.WithFlags(flags),
		splitkit.WithMatchTimeout(timeout),
		splitkit.WithLimit(f.Limit))
	if err != nil {
		return err
	}
	log.Debug().
		Str("engine", engine).
		Str("pattern", pattern).
		Int("limit", f.Limit).
		Msg("splitting")

	format := "%s\n"
	if f.Quote {
		format = "%q\n"
	}
	for token, err := range s.IterE() {
		if err != nil {
			return fmt.Errorf("matching %q failed: %w", pattern, err)
		}
		if _, err := fmt.Fprintf(w, format, token); err != nil {
			return err
		}
	}
	return nil
}
