package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resistcalc.circuitbench.org/internal/eseries"
)

func TestSolveCommandWritesToCommandOutput(t *testing.T) {
	gridMinKOhm = eseries.DefaultMinKOhm
	gridMaxKOhm = eseries.DefaultMaxKOhm

	cmd := solveCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--mode", "r1", "--vout", "5.0", "--vfb", "0.8", "--fixed", "10"})

	require.NoError(t, cmd.Execute())

	// Everything the command prints must land on the configured writer,
	// not the process stdout.
	assert.Contains(t, out.String(), "Theoretical R1: 52.5000 kOhm")
	assert.Contains(t, out.String(), "RC0402FR-0752K3L")
	assert.Contains(t, out.String(), "* error within the recommended 1% band")
}

func TestSolveCommandReportsEmptyGrid(t *testing.T) {
	gridMinKOhm = 0.2
	gridMaxKOhm = 0.1
	defer func() {
		gridMinKOhm = eseries.DefaultMinKOhm
		gridMaxKOhm = eseries.DefaultMaxKOhm
	}()

	cmd := solveCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--vout", "5.0", "--vfb", "0.8", "--fixed", "10"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "no standard values in the configured grid")
}
