// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/adapter"
)

// HealthController handles health check endpoints.
type HealthController struct {
	upstreamChecker func() bool
	snapshots       adapter.SnapshotRepository
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status          string `json:"status"`
	Upstream        string `json:"upstream"`
	SnapshotVersion string `json:"snapshot_version,omitempty"`
	SnapshotAge     string `json:"snapshot_age,omitempty"`
	Timestamp       string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(upstreamChecker func() bool, snapshots adapter.SnapshotRepository) *HealthController {
	return &HealthController{
		upstreamChecker: upstreamChecker,
		snapshots:       snapshots,
	}
}

// Check handles GET /health requests.
// It reports upstream reachability and the age of the current snapshot.
func (h *HealthController) Check(c *gin.Context) {
	upstreamStatus := "unreachable"
	if h.upstreamChecker != nil && h.upstreamChecker() {
		upstreamStatus = "reachable"
	}

	response := HealthResponse{
		Status:    "ok",
		Upstream:  upstreamStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if h.snapshots != nil {
		if snapshot := h.snapshots.Current(); snapshot != nil {
			response.SnapshotVersion = snapshot.Version.String()
			response.SnapshotAge = time.Since(snapshot.FetchedAt).Round(time.Second).String()
		}
	}

	c.JSON(http.StatusOK, response)
}
