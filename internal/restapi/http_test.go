package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"resistcalc.circuitbench.org/internal/app"
	"resistcalc.circuitbench.org/internal/eseries"
	"resistcalc.circuitbench.org/internal/logging"
	"resistcalc.circuitbench.org/internal/models"
)

// createTestApi creates a RestAPI instance with a quiet logger and the
// default grid bounds for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	application := &app.Application{
		Config: app.Config{
			Env:         "test",
			ApiKeys:     []string{"TEST"},
			GridMinKOhm: eseries.DefaultMinKOhm,
			GridMaxKOhm: eseries.DefaultMaxKOhm,
			DefaultTopN: 5,
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelError),
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	return serveApiAndRetrieveEndpoint(t, api, endpoint)
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// retrieveFieldErrors makes a request expected to fail validation and
// returns the decoded fieldErrors body.
func retrieveFieldErrors(t *testing.T, endpoint string) (*http.Response, map[string][]string) {
	t.Helper()

	api := createTestApi(t)
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp, body.FieldErrors
}
