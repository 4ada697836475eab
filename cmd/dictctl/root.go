package main

import "github.com/spf13/cobra"

// newRootCmd wires the dictctl subcommands onto a root command, the
// way cue's newRootCmd in cmd/cue/cmd/root.go assembles its command
// tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dictctl",
		Short: "drive a dictengine dictionary from the command line",
		Long: `dictctl exercises the dictengine dictionary: an in-memory
chained hash table with incremental rehashing, a stateless
reverse-binary scan, and random sampling.`,
		SilenceUsage: true,
	}

	root.AddCommand(newReplCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newSampleCmd())

	return root
}
