package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"alpha", "beta"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("alpha"))
	assert.False(t, app.IsInvalidAPIKey("beta"))
	assert.True(t, app.IsInvalidAPIKey("gamma"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"TEST"},
		},
	}

	r := httptest.NewRequest("GET", "/api/calc/solve.json?key=TEST", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/calc/solve.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
