package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewJSONRequest creates an HTTP request with the given body marshaled as
// JSON and the Content-Type header set.
//
// Example:
//
//	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis",
//	    request.AnalysisRequest{Tickers: []string{"AAPL"}, StartDate: "2020-01-01"},
//	)
func NewJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}
