package restapi

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveHandlerEndToEnd(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t,
		"/api/calc/solve.json?key=TEST&mode=r1&vout=5.0&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)
	assert.Greater(t, model.CurrentTime, int64(0))

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	theoretical, ok := entry["theoretical"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 52.5, theoretical["kohm"].(float64), 1e-9)
	assert.Equal(t, "R1", theoretical["role"])

	candidates, ok := entry["candidates"].([]interface{})
	require.True(t, ok)
	require.Len(t, candidates, 5)

	best, ok := candidates[0].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 52.3, best["r1Kohm"].(float64), 1e-9)
	assert.Equal(t, 10.0, best["r2Kohm"].(float64))
	assert.Equal(t, "RC0402FR-0752K3L", best["r1Mpn"])
	assert.Equal(t, "RC0402FR-0710KL", best["r2Mpn"])
	assert.Less(t, math.Abs(best["errorPct"].(float64)), 1.0)
	assert.Equal(t, true, best["recommended"])
}

func TestSolveHandlerSolveR2Mode(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t,
		"/api/calc/solve.json?key=TEST&mode=r2&vout=5.0&vfb=0.8&fixed=100.0")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	theoretical := entry["theoretical"].(map[string]interface{})

	// R2 = 100 / (6.25 - 1)
	assert.InDelta(t, 100.0/5.25, theoretical["kohm"].(float64), 1e-9)
	assert.Equal(t, "R2", theoretical["role"])

	candidates := entry["candidates"].([]interface{})
	for _, raw := range candidates {
		candidate := raw.(map[string]interface{})
		assert.Equal(t, 100.0, candidate["r1Kohm"].(float64), "R1 stays fixed in r2 mode")
	}
}

func TestSolveHandlerRespectsTopN(t *testing.T) {
	_, model := serveAndRetrieveEndpoint(t,
		"/api/calc/solve.json?key=TEST&mode=r1&vout=5.0&vfb=0.8&fixed=10.0&topN=3")

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	candidates := entry["candidates"].([]interface{})
	assert.Len(t, candidates, 3)
}

func TestSolveHandlerRequiresAPIKey(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t,
		"/api/calc/solve.json?mode=r1&vout=5.0&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestSolveHandlerOutputBelowReference(t *testing.T) {
	// v_out < v_fb must fail as invalid input, never return a negative
	// resistance.
	resp, fieldErrors := retrieveFieldErrors(t,
		"/api/calc/solve.json?key=TEST&mode=r1&vout=0.5&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, fieldErrors, "vout")
	assert.Contains(t, fieldErrors["vout"][0], "output must exceed reference")
}

func TestSolveHandlerInvalidNumberParam(t *testing.T) {
	resp, fieldErrors := retrieveFieldErrors(t,
		"/api/calc/solve.json?key=TEST&mode=r1&vout=abc&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "vout")
}

func TestSolveHandlerInvalidMode(t *testing.T) {
	resp, fieldErrors := retrieveFieldErrors(t,
		"/api/calc/solve.json?key=TEST&mode=r3&vout=5.0&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "mode")
}

func TestSolveHandlerMissingParamsFailValidation(t *testing.T) {
	// Absent parameters arrive as zero and trip the solver's
	// preconditions.
	resp, fieldErrors := retrieveFieldErrors(t, "/api/calc/solve.json?key=TEST&mode=r1")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, fieldErrors)
}

func TestSolveHandlerEmptyGridIsNotAnError(t *testing.T) {
	api := createTestApi(t)
	// Bounds that generate no standard values at all.
	api.Application.Config.GridMinKOhm = 0.2
	api.Application.Config.GridMaxKOhm = 0.1

	resp, model := serveApiAndRetrieveEndpoint(t, api,
		"/api/calc/solve.json?key=TEST&mode=r1&vout=40.8&vfb=0.8&fixed=10.0")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	candidates, ok := entry["candidates"].([]interface{})
	require.True(t, ok, "empty candidate list must serialize as an array")
	assert.Empty(t, candidates)
}
