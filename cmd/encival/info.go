package main

import (
	"github.com/spf13/cobra"

	"github.com/encival/encival/interval"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <x>",
		Short: "Print the scalar measures of an interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := interval.Parse(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("interval: %v\n", x)
			cmd.Printf("flavor:   %v\n", interval.GetConfig().DefaultFlavor)
			cmd.Printf("empty:    %v\n", x.IsEmpty())
			cmd.Printf("entire:   %v\n", x.IsEntire())
			cmd.Printf("width:    %g\n", x.Width())
			cmd.Printf("mid:      %g\n", x.Mid())
			cmd.Printf("rad:      %g\n", x.Rad())
			cmd.Printf("mag:      %g\n", x.Mag())
			cmd.Printf("mig:      %g\n", x.Mig())
			return nil
		},
	}
}
