package restapi

import (
	"net/http"
	"strings"

	"resistcalc.circuitbench.org/internal/eseries"
	"resistcalc.circuitbench.org/internal/models"
	"resistcalc.circuitbench.org/internal/utils"
)

// seriesHandler lists the standard values of one series ("e24", "e96")
// or the combined grid ("all"), optionally restricted by min/max bounds
// in kΩ.
func (api *RestAPI) seriesHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	queryParams := r.URL.Query()
	minKOhm, fieldErrors := utils.ParseFloatParam(queryParams, "min", nil)
	maxKOhm, fieldErrors := utils.ParseFloatParam(queryParams, "max", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	// Resistances are strictly positive, so zero doubles as "not provided".
	if minKOhm == 0 {
		minKOhm = api.Config.GridMinKOhm
	}
	if maxKOhm == 0 {
		maxKOhm = api.Config.GridMaxKOhm
	}

	var values []float64
	if strings.EqualFold(id, "all") {
		values = eseries.Combined(minKOhm, maxKOhm)
	} else {
		series, err := eseries.ParseSeries(id)
		if err != nil {
			api.sendNotFound(w, r)
			return
		}

		values, err = eseries.Generate(series, minKOhm, maxKOhm)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
	}

	api.sendResponse(w, r, models.NewListResponse(values, false))
}
