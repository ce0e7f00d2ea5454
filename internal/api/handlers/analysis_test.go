package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/api/request"
	"github.com/mwalraven/stock-comparison-backend/internal/model"
	"github.com/mwalraven/stock-comparison-backend/internal/testutil"
)

func TestAnalysisHandler_Analyze(t *testing.T) {
	setupHandler := func(t *testing.T, mock *testutil.MockYahooClient) *AnalysisHandler {
		t.Helper()
		return NewAnalysisHandler(testutil.NewTestAnalysisService(t, mock))
	}

	t.Run("returns the computed analysis", func(t *testing.T) {
		start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		mock := testutil.NewMockYahooClient().WithResponseForSymbol("ACME",
			testutil.CreateMockChartResponse("ACME", start,
				[]float64{100, 100},
				map[int]float64{1: 5},
			),
		)
		handler := setupHandler(t, mock)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis", request.AnalysisRequest{
			Tickers:   []string{"acme"},
			StartDate: "2020-01-01",
		})
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp AnalysisResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if resp.RunID == "" {
			t.Error("Expected a non-empty run ID")
		}
		if len(resp.Names) != 1 || resp.Names[0] != "ACME" {
			t.Fatalf("Names = %v, want [ACME]", resp.Names)
		}

		symbol, ok := resp.Symbols["ACME"]
		if !ok {
			t.Fatal("Expected a series for ACME")
		}
		if len(symbol.Series.Dates) != 2 || symbol.Series.Dates[0] != "2020-01-01" {
			t.Errorf("Series.Dates = %v, want [2020-01-01 2020-01-02]", symbol.Series.Dates)
		}
		if symbol.Series.NormalizedRegularPrice[0] != 1.0 {
			t.Errorf("NormalizedRegularPrice[0] = %v, want 1.0", symbol.Series.NormalizedRegularPrice[0])
		}

		if len(resp.Summary) != 1 {
			t.Fatalf("Expected 1 summary row, got %d", len(resp.Summary))
		}
		row := resp.Summary[0]
		if row.RegularPrice != "1.00" {
			t.Errorf("Summary.RegularPrice = %q, want \"1.00\"", row.RegularPrice)
		}
		if row.DividendsPaid != "1.05" {
			t.Errorf("Summary.DividendsPaid = %q, want \"1.05\"", row.DividendsPaid)
		}
		if row.DividendsReinvested != "1.05" {
			t.Errorf("Summary.DividendsReinvested = %q, want \"1.05\"", row.DividendsReinvested)
		}

		if len(resp.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %+v", resp.Warnings)
		}
	})

	t.Run("reports skipped symbols as warnings", func(t *testing.T) {
		mock := testutil.NewMockYahooClient().
			WithResponseForSymbol("GHOST", testutil.EmptyYahooResponse())
		handler := setupHandler(t, mock)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis", request.AnalysisRequest{
			Tickers:   []string{"AAPL", "GHOST"},
			StartDate: "2020-01-01",
		})
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp AnalysisResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if len(resp.Names) != 1 || resp.Names[0] != "AAPL" {
			t.Errorf("Names = %v, want [AAPL]", resp.Names)
		}
		if len(resp.Warnings) != 1 || resp.Warnings[0].Symbol != "GHOST" {
			t.Errorf("Warnings = %+v, want one for GHOST", resp.Warnings)
		}
	})

	t.Run("returns 400 for an empty ticker list", func(t *testing.T) {
		mock := testutil.NewMockYahooClient()
		handler := setupHandler(t, mock)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis", request.AnalysisRequest{
			StartDate: "2020-01-01",
		})
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if mock.QueryCount != 0 {
			t.Errorf("Expected no fetch attempts for an invalid request, got %d", mock.QueryCount)
		}
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		handler := setupHandler(t, testutil.NewMockYahooClient())

		req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for an unknown index", func(t *testing.T) {
		handler := setupHandler(t, testutil.NewMockYahooClient())

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis", request.AnalysisRequest{
			Tickers:   []string{"AAPL"},
			Index:     "Nikkei 225",
			StartDate: "2020-01-01",
		})
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for a malformed start date", func(t *testing.T) {
		handler := setupHandler(t, testutil.NewMockYahooClient())

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis", request.AnalysisRequest{
			Tickers:   []string{"AAPL"},
			StartDate: "01/01/2020",
		})
		w := httptest.NewRecorder()

		handler.Analyze(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAnalysisHandler_Indices(t *testing.T) {
	handler := NewAnalysisHandler(testutil.NewTestAnalysisService(t, testutil.NewMockYahooClient()))

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/indices", nil)
	w := httptest.NewRecorder()

	handler.Indices(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var indices []model.MajorIndex
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&indices)

	if len(indices) != 5 {
		t.Fatalf("Expected 5 indices, got %d", len(indices))
	}
	if indices[0].Name != "S&P 500" || indices[0].Symbol != "^GSPC" {
		t.Errorf("indices[0] = %+v, want S&P 500 / ^GSPC", indices[0])
	}
	if indices[4].Name != "FTSE 100" || indices[4].Symbol != "^FTSE" {
		t.Errorf("indices[4] = %+v, want FTSE 100 / ^FTSE", indices[4])
	}
}
