package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resistcalc.circuitbench.org/internal/eseries"
)

// series <id>: print the standard values of a series (e24, e96 or all).
func seriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series <e24|e96|all>",
		Short: "Print an E-series standard-value grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values []float64
			if strings.EqualFold(args[0], "all") {
				values = eseries.Combined(gridMinKOhm, gridMaxKOhm)
			} else {
				series, err := eseries.ParseSeries(args[0])
				if err != nil {
					return err
				}
				values, err = eseries.Generate(series, gridMinKOhm, gridMaxKOhm)
				if err != nil {
					return err
				}
			}

			for _, v := range values {
				fmt.Printf("%g\n", v)
			}
			return nil
		},
	}
	return cmd
}
