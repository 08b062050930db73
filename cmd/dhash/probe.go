package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theflywheel/dhash"
)

func newProbeCommand(flags *rootFlags) *cobra.Command {
	var attempts int
	cmd := &cobra.Command{
		Use:   "probe <key>",
		Short: "Print the slots visited for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			h, err := cfg.NewHasher()
			if err != nil {
				return err
			}

			n := attempts
			if n <= 0 {
				n = cfg.Capacity
			}
			for attempt, idx := range probeSequence(h, args[0], cfg.Capacity, n) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", attempt, idx)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", 0, "number of attempts to print, 0 prints capacity attempts")
	return cmd
}

func probeSequence(h dhash.Hasher, key string, capacity, attempts int) []int {
	seq := make([]int, attempts)
	for i := range seq {
		seq[i] = dhash.Probe(h, key, capacity, i)
	}
	return seq
}
