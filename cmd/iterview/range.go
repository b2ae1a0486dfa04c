package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ccoveille/go-safecast/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"go.llib.dev/iterview/pkg/rangekit"
)

func registerRangeCmd(rootCmd *cobra.Command, c *Config) {
	var count bool
	rangeCmd := &cobra.Command{
		Use:   "range [start] stop [step]",
		Short: "Print the integers of a range, one per line",
		Long: "Print start, start+step, ... as long as the value is strictly before stop in the direction of step.\n" +
			"Stepping saturates at the bounds of the selected integer type.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(cmd.OutOrStdout(), c.IntType, args, count)
		},
	}
	rangeCmd.Flags().StringVar(&c.IntType, "type", c.IntType, "integer type of the range (int, int8, ..., uint64)")
	rangeCmd.Flags().BoolVar(&count, "count", false, "print only the number of values")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(w io.Writer, typ string, args []string, count bool) error {
	switch typ {
	case "int":
		return printRange[int](w, args, count)
	case "int8":
		return printRange[int8](w, args, count)
	case "int16":
		return printRange[int16](w, args, count)
	case "int32":
		return printRange[int32](w, args, count)
	case "int64":
		return printRange[int64](w, args, count)
	case "uint":
		return printRange[uint](w, args, count)
	case "uint8":
		return printRange[uint8](w, args, count)
	case "uint16":
		return printRange[uint16](w, args, count)
	case "uint32":
		return printRange[uint32](w, args, count)
	case "uint64":
		return printRange[uint64](w, args, count)
	default:
		return fmt.Errorf("unknown integer type: %q", typ)
	}
}

func printRange[T constraints.Integer](w io.Writer, args []string, count bool) error {
	nums := make([]T, 0, len(args))
	for _, arg := range args {
		n, err := parseInt[T](arg)
		if err != nil {
			return err
		}
		nums = append(nums, n)
	}

	var (
		r   *rangekit.Range[T]
		err error
	)
	switch len(nums) {
	case 1:
		r = rangekit.Until(nums[0])
	case 2:
		r, err = rangekit.New(nums[0], nums[1])
	default:
		r, err = rangekit.New(nums[0], nums[1], nums[2])
	}
	if err != nil {
		return err
	}
	log.Debug().Stringer("range", r).Uint64("len", r.Len()).Msg("iterating")

	if count {
		_, err := fmt.Fprintln(w, r.Len())
		return err
	}
	for v := range r.Iter() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// parseInt parses an integer argument into T, reporting out of range values instead of truncating them.
func parseInt[T constraints.Integer](arg string) (T, error) {
	if strings.ContainsAny(arg, ".eE") {
		return 0, fmt.Errorf("%q is not an integer", arg)
	}
	n, err := safecast.Parse[T](arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %T argument %q: %w", n, arg, err)
	}
	return n, nil
}
