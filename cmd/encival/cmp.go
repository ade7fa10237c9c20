package main

import (
	"github.com/spf13/cobra"

	"github.com/encival/encival/interval"
)

func newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Compare two intervals as uncertain real numbers",
		Long: `Compare two intervals under the real-number flavor. The order is
"certain": it holds only when it holds for every pair of representatives.
Overlapping intervals, and the empty interval, have no certain order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := interval.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := interval.Parse(args[1])
			if err != nil {
				return err
			}
			switch x.AsReal().Cmp(y.AsReal()) {
			case -1:
				cmd.Println("certainly below")
			case 1:
				cmd.Println("certainly above")
			default:
				cmd.Println("no certain order")
			}
			return nil
		},
	}
}
