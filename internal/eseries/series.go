package eseries

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Series identifies an IEC standard resistor value series.
type Series int

const (
	E24 Series = iota
	E96
)

func (s Series) String() string {
	switch s {
	case E24:
		return "E24"
	case E96:
		return "E96"
	}
	return fmt.Sprintf("Series(%d)", int(s))
}

// ParseSeries maps a series name such as "e24" or "E96" to its tag.
// Unknown names are a configuration error.
func ParseSeries(name string) (Series, error) {
	switch strings.ToUpper(name) {
	case "E24":
		return E24, nil
	case "E96":
		return E96, nil
	}
	return 0, fmt.Errorf("unsupported series %q", name)
}

// Generate produces the standard values of a series between minKOhm and
// maxKOhm inclusive, in kilo-ohms, sorted ascending with no duplicates.
//
// Rather than hardcoding the IEC tables, the base multipliers are derived
// from the logarithmic grid: 10^(n/S) rounded to the series' standard
// precision (one decimal for E24, two for E96). This tracks the published
// series closely enough for design work. A min above max yields an empty
// slice, not an error.
func Generate(series Series, minKOhm, maxKOhm float64) ([]float64, error) {
	var steps int
	var scale float64
	switch series {
	case E24:
		steps, scale = 24, 10.0
	case E96:
		steps, scale = 96, 100.0
	default:
		return nil, fmt.Errorf("unsupported series %v", series)
	}

	base := make([]float64, 0, steps)
	for n := 0; n < steps; n++ {
		raw := math.Pow(10, float64(n)/float64(steps)) * scale
		base = append(base, math.Round(raw)/scale)
	}
	base = dedupSorted(base)

	values := []float64{}
	// The 1% slack on the decade sweep tolerates floating-point misses at
	// the upper bound.
	for decade := 0.1; decade <= maxKOhm*1.01; decade *= 10 {
		for _, v := range base {
			candidate := v * decade
			if candidate >= minKOhm && candidate <= maxKOhm {
				values = append(values, candidate)
			}
		}
	}

	// Decade products can collide after rounding; collapse at 1e-4 kΩ.
	for i := range values {
		values[i] = math.Round(values[i]*1e4) / 1e4
	}
	return dedupSorted(values), nil
}

func dedupSorted(values []float64) []float64 {
	sort.Float64s(values)
	out := values[:0]
	for _, v := range values {
		if len(out) == 0 || !scalar.EqualWithinAbs(v, out[len(out)-1], 1e-9) {
			out = append(out, v)
		}
	}
	return out
}
