package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ccoveille/go-safecast/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.llib.dev/iterview"
	"go.llib.dev/iterview/pkg/mapview"
)

type mapFlags struct {
	Keys   bool
	Values bool
	Add    int64
}

func registerMapCmd(rootCmd *cobra.Command, _ *Config) {
	var f mapFlags
	mapCmd := &cobra.Command{
		Use:   "map KEY=VALUE...",
		Short: "Print integer entries in ascending key order",
		Long: "Print the entries in ascending key order.\n" +
			"With --add, every value is increased in place through the value view before printing.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd.OutOrStdout(), args, f)
		},
	}
	mapCmd.Flags().BoolVar(&f.Keys, "keys", false, "print only the keys")
	mapCmd.Flags().BoolVar(&f.Values, "values", false, "print only the values")
	mapCmd.Flags().Int64Var(&f.Add, "add", 0, "amount added to every value")
	mapCmd.MarkFlagsMutuallyExclusive("keys", "values")
	rootCmd.AddCommand(mapCmd)
}

func runMap(w io.Writer, args []string, f mapFlags) error {
	var m mapview.Map[string, int64]
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected KEY=VALUE, got %q", arg)
		}
		val, err := safecast.Parse[int64](raw)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %w", key, err)
		}
		m.Set(key, val)
	}
	log.Debug().Int("entries", m.Len()).Msg("map loaded")

	if f.Add != 0 {
		for v := range mapview.Values(&m).Iter() {
			*v += f.Add
		}
	}

	switch {
	case f.Keys:
		return printAll(w, mapview.Keys(&m))
	case f.Values:
		for v := range mapview.Values(&m).Iter() {
			if _, err := fmt.Fprintln(w, *v); err != nil {
				return err
			}
		}
		return nil
	default:
		for k, v := range mapview.Entries(&m) {
			if _, err := fmt.Fprintf(w, "%s=%d\n", k, *v); err != nil {
				return err
			}
		}
		return nil
	}
}

func printAll[T any, C iterview.Cursor[T, C]](w io.Writer, v iterview.View[T, C]) error {
	for val := range iterview.Iter(v) {
		if _, err := fmt.Fprintln(w, val); err != nil {
			return err
		}
	}
	return nil
}
