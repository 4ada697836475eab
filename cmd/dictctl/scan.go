package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rucdlc/dictengine/dict"
)

// newScanCmd seeds n keys, then walks the whole table with the
// reverse-binary cursor scan, printing the cursor sequence and a final
// tally of how many entries were visited (which may exceed n across a
// resize, or fall short is never expected on a stable table).
func newScanCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "seed n keys and drive Scan to completion, printing the cursor trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d := newStringDict()
			for i := 0; i < n; i++ {
				if err := d.Add(uuid.NewString(), "v"); err != nil {
					return err
				}
			}

			var cursor uint64
			visited := 0
			rounds := 0
			for {
				cursor = d.Scan(cursor, nil, func(e *dict.Entry) { visited++ })
				rounds++
				fmt.Fprintf(out, "round %d cursor=%d\n", rounds, cursor)
				if cursor == 0 {
					break
				}
			}
			fmt.Fprintf(out, "visited %d entries over %d rounds (seeded %d)\n", visited, rounds, n)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of random keys to seed before scanning")
	return cmd
}
