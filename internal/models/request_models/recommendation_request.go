package request_models

import "roamwarrior/internal/models/response_models"

// PlacesRequest asks for points of interest matching the trip outline. The
// adapter returns an unordered list; callers de-duplicate before merging
// into their running selection set.
type PlacesRequest struct {
	Destination       string `json:"destination" binding:"required"`
	ArrivalCity       string `json:"arrival_city"`
	DepartureCity     string `json:"departure_city"`
	DesiredActivities string `json:"desired_activities" binding:"required"`
}

// StayRequest asks for lodging and transport suggestions against an
// existing itinerary. Candidates is optional; when empty the completion
// service proposes options on its own.
type StayRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Itinerary   string   `json:"itinerary" binding:"required"`
	Preferences string   `json:"preferences,omitempty"`
	Candidates  []string `json:"candidates,omitempty"`
}

type MergePlacesRequest struct {
	Existing []response_models.RecommendedPlace `json:"existing"`
	Incoming []response_models.RecommendedPlace `json:"incoming"`
}
