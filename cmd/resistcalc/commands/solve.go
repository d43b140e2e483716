package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resistcalc.circuitbench.org/internal/divider"
	"resistcalc.circuitbench.org/internal/eseries"
	"resistcalc.circuitbench.org/internal/mpn"
)

// solve: pick standard resistor pairs for a target output voltage.
func solveCmd() *cobra.Command {
	var (
		modeFlag  string
		vOut      float64
		vFB       float64
		fixedKOhm float64
		topN      int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Pick feedback-divider resistors for a target output voltage",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := divider.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			theoretical, err := divider.Solve(mode, vOut, vFB, fixedKOhm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Theoretical %s: %.4f kOhm\n\n", theoretical.Role, theoretical.KOhm)

			if topN <= 0 {
				topN = 5
			}
			grid := eseries.Combined(gridMinKOhm, gridMaxKOhm)
			ranked := divider.Rank(mode, vOut, vFB, fixedKOhm, grid, topN)
			if len(ranked) == 0 {
				fmt.Fprintln(out, "no standard values in the configured grid")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "R1 (kOhm)\tR2 (kOhm)\tVout (V)\tError (%)\tR1 MPN\tR2 MPN\t")
			for _, c := range ranked {
				marker := ""
				if c.Recommended() {
					marker = " *"
				}
				fmt.Fprintf(w, "%g\t%g\t%.4f\t%+.3f%s\t%s\t%s\t\n",
					c.R1KOhm, c.R2KOhm, c.ActualVOut, c.ErrorPct, marker,
					mpn.PartNumber(c.R1KOhm), mpn.PartNumber(c.R2KOhm))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\n* error within the recommended 1% band")
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "r1", "resistor to solve for (r1|r2)")
	cmd.Flags().Float64Var(&vOut, "vout", 0, "target output voltage in volts")
	cmd.Flags().Float64Var(&vFB, "vfb", 0, "feedback reference voltage in volts")
	cmd.Flags().Float64Var(&fixedKOhm, "fixed", 0, "value of the fixed resistor in kOhm")
	cmd.Flags().IntVar(&topN, "top", 5, "number of ranked candidates to print")
	_ = cmd.MarkFlagRequired("vout")
	_ = cmd.MarkFlagRequired("vfb")
	_ = cmd.MarkFlagRequired("fixed")
	return cmd
}
