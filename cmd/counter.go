package cmd

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/on-the-ground/pure_ive_go/internal/configkeys"
	"github.com/on-the-ground/pure_ive_go/internal/logging"
	"github.com/on-the-ground/pure_ive_go/seq"
	"github.com/on-the-ground/pure_ive_go/stream"
)

func newCounterCommand(v *viper.Viper) *cobra.Command {
	counterCmd := &cobra.Command{
		Use:   "counter",
		Short: "Drain a bounded counter",
		Long: `Print the values of a counter running from 1 to its bound, omitting the
skip value when one is given, then the pairing total: a plain counter zipped
with one that skips 1, multiplied pairwise, keeping products divisible by 3.

Examples:
  pureive counter
  pureive counter --skip 5
  pureive counter --bound 8 --skip 3 --stream`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounterCommand(cmd, v)
		},
	}

	counterCmd.Flags().Uint32("bound", seq.DefaultBound, "largest value produced")
	counterCmd.Flags().Uint32("skip", 0, "value to omit (0 disables skipping)")
	counterCmd.Flags().Bool("stream", false, "drain through channel stages instead of iterators")
	_ = v.BindPFlag(configkeys.ConfigCounterBound, counterCmd.Flags().Lookup("bound"))
	_ = v.BindPFlag(configkeys.ConfigCounterSkip, counterCmd.Flags().Lookup("skip"))
	_ = v.BindPFlag(configkeys.ConfigCounterStream, counterCmd.Flags().Lookup("stream"))

	return counterCmd
}

func runCounterCommand(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(v)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	bound := v.GetUint32(configkeys.ConfigCounterBound)
	counter := seq.NewCounterWithBound(bound)
	if skip := v.GetUint32(configkeys.ConfigCounterSkip); skip != 0 {
		if err := counter.SkipValue(skip); err != nil {
			return err
		}
	}

	values, produced := joinValues(counter.All())
	fmt.Fprintf(cmd.OutOrStdout(), "values: [%s]\n", values)

	plain := seq.NewCounterWithBound(bound)
	skipping := seq.NewCounterWithBound(bound)
	if err := skipping.SkipValue(1); err != nil {
		return err
	}

	var total uint32
	if v.GetBool(configkeys.ConfigCounterStream) {
		total, err = pairTotalStream(cmd.Context(), plain.All(), skipping.All())
		if err != nil {
			return err
		}
	} else {
		total = pairTotal(plain.All(), skipping.All())
	}
	logging.Log(logger, logging.LogDebug, "counter drained", map[string]interface{}{
		"bound":  bound,
		"values": produced,
		"total":  total,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "pair total: %d\n", total)
	return nil
}

// joinValues grows with what s actually yields, never with the counter's bound.
func joinValues(s iter.Seq[uint32]) (string, int) {
	var values []string
	for n := range s {
		values = append(values, fmt.Sprint(n))
	}
	return strings.Join(values, " "), len(values)
}

func multiply(a, b uint32) uint32 { return a * b }

func divisibleBy3(v uint32) bool { return v%3 == 0 }

func pairTotal(a, b iter.Seq[uint32]) uint32 {
	return seq.Sum(seq.Filter(seq.ZipWith(a, b, multiply), divisibleBy3))
}

func pairTotalStream(ctx context.Context, a, b iter.Seq[uint32]) (uint32, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	products := stream.Zip(ctx, stream.FromSeq(ctx, a, 0), stream.FromSeq(ctx, b, 0), multiply)
	return stream.Sum(ctx, stream.Filter(ctx, products, divisibleBy3))
}
