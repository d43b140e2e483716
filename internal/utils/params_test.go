package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatParam(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		key        string
		want       float64
		wantErrors int
	}{
		{name: "valid float", query: "vout=5.0", key: "vout", want: 5.0},
		{name: "valid integer", query: "fixed=10", key: "fixed", want: 10},
		{name: "missing key is not an error", query: "vout=5.0", key: "vfb", want: 0},
		{name: "invalid value", query: "vout=abc", key: "vout", want: 0, wantErrors: 1},
		{name: "negative value parses", query: "vout=-1.5", key: "vout", want: -1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, fieldErrors := ParseFloatParam(params, tc.key, nil)
			assert.Equal(t, tc.want, got)
			assert.Len(t, fieldErrors[tc.key], tc.wantErrors)
		})
	}
}

func TestParseFloatParamAccumulatesErrors(t *testing.T) {
	params, err := url.ParseQuery("vout=abc&vfb=def")
	require.NoError(t, err)

	_, fieldErrors := ParseFloatParam(params, "vout", nil)
	_, fieldErrors = ParseFloatParam(params, "vfb", fieldErrors)

	assert.Len(t, fieldErrors, 2)
	assert.Contains(t, fieldErrors, "vout")
	assert.Contains(t, fieldErrors, "vfb")
}

func TestParseIntParam(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		key        string
		want       int
		wantErrors int
	}{
		{name: "valid int", query: "topN=5", key: "topN", want: 5},
		{name: "missing key", query: "topN=5", key: "other", want: 0},
		{name: "float is invalid", query: "topN=5.5", key: "topN", want: 0, wantErrors: 1},
		{name: "text is invalid", query: "topN=five", key: "topN", want: 0, wantErrors: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, fieldErrors := ParseIntParam(params, tc.key, nil)
			assert.Equal(t, tc.want, got)
			assert.Len(t, fieldErrors[tc.key], tc.wantErrors)
		})
	}
}
