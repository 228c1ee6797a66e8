package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-farmfilter/bloom"
)

// ErrFileExists is returned by create when the target exists and --force is
// not set.
var ErrFileExists = errors.New("filter file already exists")

type createFlags struct {
	items  uint64
	rate   float64
	bits   uint64
	hashes int
	force  bool
}

func newCreateCommand(a *app) *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:   "create FILE",
		Short: "Create an empty filter file",
		Long: `Create an empty filter file.

With --items the filter is sized for that many items at --rate. Otherwise
--bits and --hashes (or their configured defaults) are used directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			exists, err := a.store.Exists(path)
			if err != nil {
				return err
			}
			if exists && !flags.force {
				return fmt.Errorf("%w: %s", ErrFileExists, path)
			}

			f, err := a.newFilter(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.store.Save(path, f); err != nil {
				return err
			}

			a.log.Infof("created %s: bits=%d k=%d", path, f.Bits(), f.K())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bits, %d hashes\n", path, f.Bits(), f.K())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&flags.items, "items", 0, "size for this many expected items")
	cmd.Flags().Float64Var(&flags.rate, "rate", 0, "target false-positive rate with --items (default from config)")
	cmd.Flags().Uint64Var(&flags.bits, "bits", 0, "bit count without --items (default from config)")
	cmd.Flags().IntVar(&flags.hashes, "hashes", 0, "hash count without --items (default from config)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing file")
	cmd.MarkFlagsMutuallyExclusive("items", "bits")
	cmd.MarkFlagsMutuallyExclusive("items", "hashes")

	return cmd
}

func (a *app) newFilter(cmd *cobra.Command, flags createFlags) (*bloom.Filter, error) {
	if cmd.Flags().Changed("items") {
		rate := flags.rate
		if rate == 0 {
			rate = a.cfg.ErrorRate
		}
		return bloom.CreateOptimal(flags.items, rate, bloom.WithHash(a.hash))
	}

	cfg := bloom.Config{Bits: a.cfg.Bits, Hashes: a.cfg.Hashes, Hash: a.hash}
	if flags.bits != 0 {
		cfg.Bits = flags.bits
	}
	if flags.hashes != 0 {
		cfg.Hashes = flags.hashes
	}
	return bloom.New(cfg)
}
