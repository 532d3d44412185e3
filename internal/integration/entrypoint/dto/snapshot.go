package dto

import (
	"time"

	"github.com/opsboard/backend/internal/application/usecase/snapshot"
)

// RefreshResponse represents the response for the snapshot refresh API.
type RefreshResponse struct {
	SnapshotVersion string `json:"snapshot_version"`
	ExerciseID      int64  `json:"exercise_id"`
	FetchedAt       string `json:"fetched_at"`
}

// ToRefreshResponse converts a RefreshOutput to its DTO.
func ToRefreshResponse(output *snapshot.RefreshOutput) RefreshResponse {
	return RefreshResponse{
		SnapshotVersion: output.Version.String(),
		ExerciseID:      output.ExerciseID,
		FetchedAt:       output.FetchedAt.UTC().Format(time.RFC3339),
	}
}
