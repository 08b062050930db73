package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/theflywheel/dhash"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootFlags struct {
	configPath    string
	capacity      int
	hasher        string
	maxLoadFactor float64
	verbose       bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "dhash",
		Short:         "Drive a double hashing string table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "TOML config file")
	pf.IntVar(&flags.capacity, "capacity", dhash.DefaultCapacity, "number of slots")
	pf.StringVar(&flags.hasher, "hasher", dhash.HasherPolynomial, "hash pair: polynomial or xxhash")
	pf.Float64Var(&flags.maxLoadFactor, "max-load", 0, "grow past this load factor, 0 keeps capacity fixed")
	pf.BoolVar(&flags.verbose, "verbose", false, "log table events")

	cmd.AddCommand(newRunCommand(flags), newProbeCommand(flags))
	return cmd
}

// config merges the config file, if any, with flags set on the command line.
func (f *rootFlags) config(cmd *cobra.Command) (dhash.Config, error) {
	cfg := dhash.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = dhash.LoadConfig(f.configPath); err != nil {
			return dhash.Config{}, err
		}
	}

	pf := cmd.Flags()
	if f.configPath == "" || pf.Changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if f.configPath == "" || pf.Changed("hasher") {
		cfg.Hasher = f.hasher
	}
	if f.configPath == "" || pf.Changed("max-load") {
		cfg.MaxLoadFactor = f.maxLoadFactor
	}
	return cfg, cfg.Validate()
}

func (f *rootFlags) logger() (*zap.Logger, error) {
	if f.verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func (f *rootFlags) newTable(cmd *cobra.Command) (*dhash.Table, *zap.Logger, error) {
	cfg, err := f.config(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	logger, err := f.logger()
	if err != nil {
		return nil, nil, errors.Wrap(err, "build logger")
	}

	table, err := dhash.New(append(opts, dhash.WithLogger(logger))...)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	logger.Debug("table ready",
		zap.Int("capacity", cfg.Capacity),
		zap.String("hasher", cfg.Hasher),
		zap.Float64("maxLoadFactor", cfg.MaxLoadFactor))
	return table, logger, nil
}
