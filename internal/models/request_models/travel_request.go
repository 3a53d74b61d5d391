package request_models

// TravelRequest carries the user-declared trip parameters collected by the
// wizard. Dates is free form ("7 days", "first week of June"); DayCount is
// the explicit override when the client already knows the duration.
type TravelRequest struct {
	Destination       string   `json:"destination"`
	ArrivalCity       string   `json:"arrival_city"`
	DepartureCity     string   `json:"departure_city"`
	Dates             string   `json:"dates"`
	DayCount          int      `json:"day_count,omitempty"`
	Locations         []string `json:"locations,omitempty"`
	DesiredActivities string   `json:"desired_activities"`
	Feedback          string   `json:"feedback,omitempty"`
}

type RefineRequest struct {
	SessionID   string `json:"session_id" binding:"required"`
	Feedback    string `json:"feedback" binding:"required"`
	Preferences string `json:"preferences,omitempty"`
}
