package restapi

import (
	"log/slog"
	"net/http"

	"resistcalc.circuitbench.org/internal/divider"
	"resistcalc.circuitbench.org/internal/eseries"
	"resistcalc.circuitbench.org/internal/logging"
	"resistcalc.circuitbench.org/internal/models"
	"resistcalc.circuitbench.org/internal/utils"
)

// solveHandler computes the theoretical feedback resistor for the
// requested target voltage and ranks the standard-value grid against it.
func (api *RestAPI) solveHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	vOut, fieldErrors := utils.ParseFloatParam(queryParams, "vout", nil)
	vFB, fieldErrors := utils.ParseFloatParam(queryParams, "vfb", fieldErrors)
	fixed, fieldErrors := utils.ParseFloatParam(queryParams, "fixed", fieldErrors)
	topN, fieldErrors := utils.ParseIntParam(queryParams, "topN", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	mode, err := divider.ParseMode(queryParams.Get("mode"))
	if err != nil {
		api.dividerErrorResponse(w, r, err)
		return
	}

	if topN <= 0 {
		topN = api.Config.DefaultTopN
	}

	solution, err := divider.Solve(mode, vOut, vFB, fixed)
	if err != nil {
		api.dividerErrorResponse(w, r, err)
		return
	}

	// An empty candidate list is a normal outcome here, not a failure:
	// the grid simply has nothing in range.
	candidates := divider.Rank(mode, vOut, vFB, fixed, api.candidateGrid(), topN)

	logging.LogOperation(logging.FromContext(r.Context()), "divider_solve",
		slog.String("mode", mode.String()),
		slog.Float64("theoretical_kohm", solution.KOhm),
		slog.Int("candidates", len(candidates)))

	api.sendResponse(w, r, models.NewEntryResponse(models.NewSolveData(solution, candidates)))
}

// candidateGrid returns the ranked search space for the configured
// bounds, reusing the cached default grid when possible.
func (api *RestAPI) candidateGrid() []float64 {
	cfg := api.Config
	if cfg.GridMinKOhm == eseries.DefaultMinKOhm && cfg.GridMaxKOhm == eseries.DefaultMaxKOhm {
		return eseries.StandardValues()
	}
	return eseries.Combined(cfg.GridMinKOhm, cfg.GridMaxKOhm)
}
