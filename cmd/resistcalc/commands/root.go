package commands

import (
	"github.com/spf13/cobra"

	"resistcalc.circuitbench.org/internal/eseries"
)

var (
	gridMinKOhm float64
	gridMaxKOhm float64
)

func Execute() error {
	root := &cobra.Command{
		Use:   "resistcalc",
		Short: "DC-DC feedback-divider resistor calculator",
	}

	root.PersistentFlags().Float64Var(&gridMinKOhm, "min", eseries.DefaultMinKOhm, "lower bound of the standard-value grid in kOhm")
	root.PersistentFlags().Float64Var(&gridMaxKOhm, "max", eseries.DefaultMaxKOhm, "upper bound of the standard-value grid in kOhm")

	root.AddCommand(solveCmd(), seriesCmd(), mpnCmd())
	return root.Execute()
}
