package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/encival/encival/interval"
)

var unaryFns = map[string]func(interval.Interval) interval.Interval{
	"neg":   interval.Interval.Neg,
	"abs":   interval.Interval.Abs,
	"sqr":   interval.Interval.Sqr,
	"recip": interval.Interval.Recip,
	"sqrt":  interval.Interval.Sqrt,
	"exp":   interval.Interval.Exp,
	"log":   interval.Interval.Log,
	"sin":   interval.Interval.Sin,
	"cos":   interval.Interval.Cos,
	"tan":   interval.Interval.Tan,
	"asin":  interval.Interval.Asin,
	"acos":  interval.Interval.Acos,
	"atan":  interval.Interval.Atan,
	"sinh":  interval.Interval.Sinh,
	"cosh":  interval.Interval.Cosh,
	"tanh":  interval.Interval.Tanh,
	"asinh": interval.Interval.Asinh,
	"acosh": interval.Interval.Acosh,
	"atanh": interval.Interval.Atanh,
}

func newFnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fn <name> <x>",
		Short: "Apply a unary function to an interval",
		Long: `Apply a unary function to an interval.

Functions: neg, abs, sqr, recip, sqrt, exp, log, sin, cos, tan, asin,
acos, atan, sinh, cosh, tanh, asinh, acosh, atanh.

Domain-restricted functions first intersect the argument with their
domain; an argument entirely outside the domain yields ∅.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := unaryFns[args[0]]
			if !ok {
				return fmt.Errorf("unknown function %q", args[0])
			}
			x, err := interval.Parse(args[1])
			if err != nil {
				return err
			}
			cmd.Println(f(x))
			return nil
		},
	}
}
