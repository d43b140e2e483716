package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"resistcalc.circuitbench.org/internal/mpn"
	"resistcalc.circuitbench.org/internal/vendors"
)

// mpn <kohm>: encode a resistance as a Yageo part number.
func mpnCmd() *cobra.Command {
	var showLinks bool

	cmd := &cobra.Command{
		Use:   "mpn <kohm>",
		Short: "Encode a resistance as a Yageo part number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kohm, err := strconv.ParseFloat(args[0], 64)
			if err != nil || kohm <= 0 {
				return fmt.Errorf("resistance must be a positive number of kOhm, got %q", args[0])
			}

			partNumber := mpn.PartNumber(kohm)
			fmt.Printf("Value code:     %s\n", mpn.ValueCode(kohm))
			fmt.Printf("Part number:    %s\n", partNumber)
			fmt.Printf("Search keyword: %s ohm\n", mpn.SearchKeyword(kohm))

			if showLinks {
				fmt.Println()
				printLinks("Value search", vendors.SearchURLs(kohm))
				printLinks("Part number search", vendors.MPNSearchURLs(partNumber))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLinks, "links", false, "print distributor search links")
	return cmd
}

func printLinks(title string, urls map[string]string) {
	fmt.Printf("%s:\n", title)
	names := make([]string, 0, len(urls))
	for name := range urls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-12s %s\n", name, urls[name])
	}
}
