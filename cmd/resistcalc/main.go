package main

import (
	"os"

	"resistcalc.circuitbench.org/cmd/resistcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
