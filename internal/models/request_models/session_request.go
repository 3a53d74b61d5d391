package request_models

import "roamwarrior/internal/models/response_models"

type GeneratePlanRequest struct {
	SessionID string `json:"session_id,omitempty"`
	TravelRequest
}

// ReorderDaysRequest permutes the day sequence of the stored plan. Order
// must list every current day label exactly once.
type ReorderDaysRequest struct {
	Order []string `json:"order" binding:"required"`
}

type SavePlanRequest struct {
	Plan response_models.ItineraryPlan `json:"plan" binding:"required"`
}
