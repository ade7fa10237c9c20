package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/encival/encival/interval"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <x> <y>",
		Short: "Apply a binary operation to two intervals",
		Long: `Apply a binary operation to two intervals.

Operations: add, sub, mul, div, pow, pown, hull, intersect.
pown takes an integer exponent as its second operand.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := interval.Parse(args[1])
			if err != nil {
				return err
			}

			op := args[0]
			if op == "pown" {
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("pown exponent %q: %v", args[2], err)
				}
				cmd.Println(x.Pown(n))
				return nil
			}

			y, err := interval.Parse(args[2])
			if err != nil {
				return err
			}

			var r interval.Interval
			switch op {
			case "add":
				r = x.Add(y)
			case "sub":
				r = x.Sub(y)
			case "mul":
				r = x.Mul(y)
			case "div":
				r = x.Div(y)
			case "pow":
				if r, err = x.PowChecked(y); err != nil {
					return err
				}
			case "hull":
				r = x.Hull(y)
			case "intersect":
				r = x.Intersect(y)
			default:
				return fmt.Errorf("unknown operation %q", op)
			}
			cmd.Println(r)
			return nil
		},
	}
}
