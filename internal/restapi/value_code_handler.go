package restapi

import (
	"net/http"
	"strconv"

	"resistcalc.circuitbench.org/internal/models"
	"resistcalc.circuitbench.org/internal/utils"
)

// valueCodeHandler encodes one resistance (kΩ, from the path) as its
// datasheet value code and Yageo 0402 part number, with distributor
// search links.
func (api *RestAPI) valueCodeHandler(w http.ResponseWriter, r *http.Request) {
	raw := utils.ExtractIDFromParams(r, "value")

	kohm, err := strconv.ParseFloat(raw, 64)
	if err != nil || kohm <= 0 {
		api.validationErrorResponse(w, r, map[string][]string{
			"value": {"must be a positive resistance in kilo-ohms"},
		})
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewValueCodeModel(kohm)))
}
