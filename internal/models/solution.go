package models

import (
	"resistcalc.circuitbench.org/internal/divider"
	"resistcalc.circuitbench.org/internal/mpn"
	"resistcalc.circuitbench.org/internal/vendors"
)

// TheoreticalModel is the exact-resistance portion of a solve response.
type TheoreticalModel struct {
	KOhm float64 `json:"kohm"`
	Role string  `json:"role"`
}

// CandidateModel is one ranked standard-value combination, labelled with
// the catalog part numbers for both resistors.
type CandidateModel struct {
	R1KOhm      float64 `json:"r1Kohm"`
	R2KOhm      float64 `json:"r2Kohm"`
	R1MPN       string  `json:"r1Mpn"`
	R2MPN       string  `json:"r2Mpn"`
	ActualVOut  float64 `json:"actualVout"`
	ErrorPct    float64 `json:"errorPct"`
	Recommended bool    `json:"recommended"`
}

// SolveData combines the theoretical solution with its ranked standard
// candidates.
type SolveData struct {
	Theoretical TheoreticalModel `json:"theoretical"`
	Candidates  []CandidateModel `json:"candidates"`
}

// NewCandidateModel builds the response form of a ranked candidate.
func NewCandidateModel(c divider.Candidate) CandidateModel {
	return CandidateModel{
		R1KOhm:      c.R1KOhm,
		R2KOhm:      c.R2KOhm,
		R1MPN:       mpn.PartNumber(c.R1KOhm),
		R2MPN:       mpn.PartNumber(c.R2KOhm),
		ActualVOut:  c.ActualVOut,
		ErrorPct:    c.ErrorPct,
		Recommended: c.Recommended(),
	}
}

// NewSolveData builds the solve response payload. The candidate list is
// always non-nil so an empty result serializes as [] rather than null.
func NewSolveData(sol divider.Solution, candidates []divider.Candidate) SolveData {
	candidateModels := make([]CandidateModel, 0, len(candidates))
	for _, c := range candidates {
		candidateModels = append(candidateModels, NewCandidateModel(c))
	}
	return SolveData{
		Theoretical: TheoreticalModel{KOhm: sol.KOhm, Role: sol.Role.String()},
		Candidates:  candidateModels,
	}
}

// ValueCodeModel describes one resistance's catalog identity and the
// storefront links derived from it.
type ValueCodeModel struct {
	KOhm          float64           `json:"kohm"`
	Code          string            `json:"code"`
	MPN           string            `json:"mpn"`
	SearchKeyword string            `json:"searchKeyword"`
	SearchURLs    map[string]string `json:"searchUrls"`
	MPNURLs       map[string]string `json:"mpnUrls"`
}

// NewValueCodeModel builds the value-code response for a resistance in kΩ.
func NewValueCodeModel(kohm float64) ValueCodeModel {
	partNumber := mpn.PartNumber(kohm)
	return ValueCodeModel{
		KOhm:          kohm,
		Code:          mpn.ValueCode(kohm),
		MPN:           partNumber,
		SearchKeyword: mpn.SearchKeyword(kohm),
		SearchURLs:    vendors.SearchURLs(kohm),
		MPNURLs:       vendors.MPNSearchURLs(partNumber),
	}
}
