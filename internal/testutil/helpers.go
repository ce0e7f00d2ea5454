package testutil

import (
	"testing"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/service"
	"github.com/mwalraven/stock-comparison-backend/internal/yahoo"
)

// NewTestAnalysisService wires an AnalysisService against the given client
// with test-friendly settings (short fetch timeout, sequential fetches).
func NewTestAnalysisService(t *testing.T, client yahoo.Client) *service.AnalysisService {
	t.Helper()

	return service.NewAnalysisService(client, 5*time.Second, 1)
}
