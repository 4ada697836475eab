package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newBenchCmd loads a fresh dictionary with n distinct random keys and
// reports the wall time split across insertion and incremental rehash
// completion, the way a load test cares about both.
func newBenchCmd() *cobra.Command {
	var n int
	var rehashMillis int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "insert n random keys and report timing and table stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d := newStringDict()

			keys := make([]string, n)
			for i := range keys {
				keys[i] = uuid.NewString()
			}

			start := time.Now()
			for _, k := range keys {
				if err := d.Add(k, k); err != nil {
					return err
				}
			}
			insertElapsed := time.Since(start)

			rehashStart := time.Now()
			for d.IsRehashing() {
				if _, err := d.RehashMilliseconds(rehashMillis); err != nil {
					return err
				}
			}
			rehashElapsed := time.Since(rehashStart)

			fmt.Fprintf(out, "inserted %d keys in %s\n", n, insertElapsed)
			fmt.Fprintf(out, "drained rehash in %s\n", rehashElapsed)
			fmt.Fprint(out, d.Stats())
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 100000, "number of random keys to insert")
	cmd.Flags().IntVar(&rehashMillis, "rehash-slice-ms", 1, "time budget per RehashMilliseconds call while draining")
	return cmd
}
