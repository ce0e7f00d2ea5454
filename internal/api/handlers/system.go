package handlers

import (
	"net/http"

	"github.com/mwalraven/stock-comparison-backend/internal/api/response"
	"github.com/mwalraven/stock-comparison-backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports service liveness. The service holds no stateful
// collaborators, so a reachable process is a healthy one.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// VersionInfoResponse represents the version check response.
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
	UptimeSecs int64  `json:"uptime_seconds"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version := h.systemService.CheckVersion()

	response.RespondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: version.AppVersion,
		UptimeSecs: version.UptimeSecs,
	})
}
