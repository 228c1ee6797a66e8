package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-farmfilter/bloom"
)

// ErrOverBudget is returned when the sized filter does not fit --budget.
var ErrOverBudget = errors.New("filter exceeds memory budget")

type optimizeFlags struct {
	items  uint64
	rate   float64
	budget string
}

func newOptimizeCommand(a *app) *cobra.Command {
	var flags optimizeFlags

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Size a filter for an item count and error rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate := flags.rate
			if rate == 0 {
				rate = a.cfg.ErrorRate
			}
			if err := bloom.CheckOptimize(flags.items, rate); err != nil {
				return err
			}
			p := bloom.Optimize(flags.items, rate)
			bitsetBytes := bloom.BitsetBytesV1(p.Bits)

			tbl := newTable()
			tbl.AppendRows([]table.Row{
				{"items", flags.items},
				{"error rate", rate},
				{"bits", p.Bits},
				{"hashes", p.Hashes},
				{"bitset", humanize.IBytes(bitsetBytes)},
				{"encoded", humanize.IBytes(bloom.EncodedBytesV1(p.Bits, p.Hashes))},
			})
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			if flags.budget == "" {
				return nil
			}
			budget, err := humanize.ParseBytes(flags.budget)
			if err != nil {
				return fmt.Errorf("parse --budget: %w", err)
			}
			if bitsetBytes > budget {
				return fmt.Errorf("%w: need %s, have %s", ErrOverBudget,
					humanize.IBytes(bitsetBytes), humanize.IBytes(budget))
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&flags.items, "items", 0, "expected number of items")
	cmd.Flags().Float64Var(&flags.rate, "rate", 0, "target false-positive rate (default from config)")
	cmd.Flags().StringVar(&flags.budget, "budget", "", "fail if the bitset exceeds this size, e.g. 64KiB")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}
