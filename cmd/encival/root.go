package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/encival/encival/interval"
)

// run executes the CLI against os.Args and returns the process exit code.
func run() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		flavor string
		strict bool
	)

	root := &cobra.Command{
		Use:   "encival",
		Short: "Validated interval arithmetic on the command line",
		Long: `encival evaluates interval arithmetic with outward rounding: every
printed result is guaranteed to enclose the exact mathematical result.

Intervals are written as "[lo, hi]", "[a]" for a point, and "∅" or
"[empty]" for the empty interval. Endpoints accept "inf" and "∞".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := interval.Config{Strict: strict, DefaultFlavor: interval.FlavorSet}
			if flavor != "" {
				f, err := interval.ParseFlavor(flavor)
				if err != nil {
					return err
				}
				cfg.DefaultFlavor = f
			}
			return interval.Configure(cfg)
		},
	}

	root.PersistentFlags().StringVar(&flavor, "flavor", "", "interval flavor: set or real")
	root.PersistentFlags().BoolVar(&strict, "strict", true, "validate endpoints on construction")

	root.AddCommand(newEvalCmd(), newFnCmd(), newInfoCmd(), newCmpCmd())

	return root
}
