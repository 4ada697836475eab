package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rucdlc/dictengine/dict"
)

// newSampleCmd seeds n keys and prints the results of RandomEntry,
// FairRandomEntry, and a SampleK draw, so the bias RandomEntry carries
// against entries in long chains (and FairRandomEntry's correction of
// it) can be eyeballed directly.
func newSampleCmd() *cobra.Command {
	var n, k int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "seed n keys and print RandomEntry, FairRandomEntry, and a k-sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d := newStringDict()
			for i := 0; i < n; i++ {
				if err := d.Add(uuid.NewString(), "v"); err != nil {
					return err
				}
			}

			if e := d.RandomEntry(); e != nil {
				fmt.Fprintf(out, "RandomEntry: %v\n", e.Key())
			} else {
				fmt.Fprintln(out, "RandomEntry: (empty)")
			}
			if e := d.FairRandomEntry(); e != nil {
				fmt.Fprintf(out, "FairRandomEntry: %v\n", e.Key())
			} else {
				fmt.Fprintln(out, "FairRandomEntry: (empty)")
			}

			des := make([]*dict.Entry, k)
			got := d.SampleK(des, k)
			fmt.Fprintf(out, "SampleK(%d) returned %d:\n", k, got)
			for _, e := range des[:got] {
				fmt.Fprintf(out, "  %v\n", e.Key())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of random keys to seed")
	cmd.Flags().IntVarP(&k, "k", "k", 15, "sample size for SampleK")
	return cmd
}
