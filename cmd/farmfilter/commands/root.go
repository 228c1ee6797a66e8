// Package commands implements the farmfilter CLI commands.
package commands

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-farmfilter/bloom"
	"github.com/forestrie/go-farmfilter/filterfile"
	"github.com/forestrie/go-farmfilter/internal/config"
)

const serviceName = "farmfilter"

// app is the state shared by every subcommand once flags and config are
// resolved.
type app struct {
	configPath string
	hashName   string
	compress   bool

	cfg   *config.Config
	hash  bloom.HashFunc
	log   logger.Logger
	store *filterfile.Store
}

// NewRootCommand builds the farmfilter command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "farmfilter",
		Short: "Create, populate and query Bloom filter files",
		Long: `farmfilter manages Bloom filters stored in the v1 wire format.

Commands:
  optimize  Size a filter for an item count and error rate
  create    Create an empty filter file
  add       Add items to a filter file
  has       Test items against a filter file
  clear     Reset every bit of a filter file
  inspect   Describe a filter file`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default .farmfilter.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringVar(&a.hashName, "hash", "", fmt.Sprintf("hash function %v (overrides config)", bloom.HashNames()))
	rootCmd.PersistentFlags().BoolVar(&a.compress, "compress", false, "LZ4-compress saved filter files (overrides config)")

	rootCmd.AddCommand(newOptimizeCommand(a))
	rootCmd.AddCommand(newCreateCommand(a))
	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newHasCommand(a))
	rootCmd.AddCommand(newClearCommand(a))
	rootCmd.AddCommand(newInspectCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.hashName != "" {
		cfg.Hash = a.hashName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("compress") {
		cfg.Compress = a.compress
	}

	logger.New(cfg.LogLevel)

	a.cfg = cfg
	a.hash = cfg.HashFunc()
	a.log = logger.Sugar.WithServiceName(serviceName)
	a.store = filterfile.NewStore(a.log, filterfile.WithCompression(cfg.Compress))
	return nil
}

// load reads the filter at path with the configured hash.
func (a *app) load(path string) (*bloom.Filter, error) {
	return a.store.Load(path, bloom.WithHash(a.hash))
}
