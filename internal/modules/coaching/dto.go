package coaching

import "gymcoach/internal/repository"

type RequestCoachRequest struct {
	CoachID int64 `json:"coach_id" binding:"required"`
}

type UpdateProfileRequest struct {
	Specialty      string `json:"specialty" binding:"required"`
	Certifications string `json:"certifications"`
	Bio            string `json:"bio"`
	Schedule       string `json:"schedule"`
}

// CoachStatusResponse tells a client where they stand with coaching.
type CoachStatusResponse struct {
	HasCoach       bool                      `json:"has_coach"`
	PendingRequest bool                      `json:"pending_request"`
	Coach          *repository.CoachListItem `json:"coach,omitempty"`
}
