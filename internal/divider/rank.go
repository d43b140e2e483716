package divider

import (
	"math"
	"sort"
)

// RecommendedMaxErrorPct is the absolute output-voltage error below
// which a candidate pair is worth buying.
const RecommendedMaxErrorPct = 1.0

// Candidate is one standard-value assignment for the unknown resistor
// together with the output voltage and signed error it produces.
// ErrorPct is (actual - target) / target * 100.
type Candidate struct {
	R1KOhm     float64
	R2KOhm     float64
	ActualVOut float64
	ErrorPct   float64
}

// Recommended reports whether the pair lands within the purchase
// threshold of the target voltage.
func (c Candidate) Recommended() bool {
	return math.Abs(c.ErrorPct) < RecommendedMaxErrorPct
}

// Rank evaluates every candidate value for the unknown role and returns
// the topN with the smallest absolute error, best first. The scan is
// exhaustive: the combined E24/E96 grid is a few hundred entries, and a
// full pass guarantees the true minimum where a narrowed search might
// miss it. Ties keep the grid's original order. An empty candidate grid
// produces an empty result, not an error; a negative topN keeps
// everything.
func Rank(mode Mode, vOutTarget, vFB, fixedKOhm float64, candidates []float64, topN int) []Candidate {
	if mode != SolveR1 && mode != SolveR2 {
		return nil
	}

	results := make([]Candidate, 0, len(candidates))
	for _, cand := range candidates {
		var r1, r2 float64
		if mode == SolveR1 {
			r1, r2 = cand, fixedKOhm
		} else {
			r1, r2 = fixedKOhm, cand
		}

		actual := vFB * (1 + r1/r2)
		results = append(results, Candidate{
			R1KOhm:     r1,
			R2KOhm:     r2,
			ActualVOut: actual,
			ErrorPct:   (actual - vOutTarget) / vOutTarget * 100,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].ErrorPct) < math.Abs(results[j].ErrorPct)
	})

	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
