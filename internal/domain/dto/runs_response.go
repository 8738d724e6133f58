package dto

import "github.com/guttosm/dexboard/internal/domain/models"

// RunsResponse is returned by GET /api/v1/runs.
type RunsResponse struct {
	Runs  []models.Run `json:"runs"`
	Count int          `json:"count" example:"2"`
}

// NewRunsResponse wraps runs, never emitting a null list.
func NewRunsResponse(runs []models.Run) RunsResponse {
	if runs == nil {
		runs = []models.Run{}
	}
	return RunsResponse{Runs: runs, Count: len(runs)}
}
