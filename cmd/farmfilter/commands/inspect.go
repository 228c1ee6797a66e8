package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-farmfilter/bloom"
	"github.com/forestrie/go-farmfilter/filterfile"
)

func newInspectCommand(a *app) *cobra.Command {
	var showSeeds bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe a filter file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", path, err)
			}
			f, err := a.load(path)
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AppendRows([]table.Row{
				{"file", path},
				{"file size", humanize.IBytes(uint64(len(raw)))},
				{"compressed", filterfile.IsCompressed(raw)},
				{"version", bloom.VersionV1},
				{"bits", f.Bits()},
				{"hashes", f.K()},
				{"bitset", humanize.IBytes(bloom.BitsetBytesV1(f.Bits()))},
				{"bits set", humanize.Comma(int64(f.PopCount()))},
				{"fill ratio", fmt.Sprintf("%.4f", f.FillRatio())},
			})
			if showSeeds {
				for i, s := range f.Seeds() {
					tbl.AppendRow(table.Row{fmt.Sprintf("seed[%d]", i), fmt.Sprintf("%#08x", s)})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSeeds, "seeds", false, "list the hash seeds")

	return cmd
}
