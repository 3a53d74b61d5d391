package response_models

// ItineraryPlan is the ordered day-by-day plan returned by the completion
// service. Day labels should be unique within a plan; uniqueness is advisory
// since the external service cannot be forced to comply.
type ItineraryPlan struct {
	Days []PlanDay `json:"days"`
}

// PlanDay is created wholesale by a generation or refinement round trip and
// never partially mutated afterwards; reordering moves whole days around.
type PlanDay struct {
	Day              string             `json:"day"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	PointsOfInterest []PointOfInterest  `json:"points_of_interest,omitempty"`
	Transportation   *TransportationLeg `json:"transportation,omitempty"`
}

type PointOfInterest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
}

// TransportationLeg describes how the traveler moves on a given day. Time
// fields are free-form descriptors; the model may answer "08:45" or "early
// morning" and both are kept as-is.
type TransportationLeg struct {
	Mode              string   `json:"mode"`
	DepartureLocation string   `json:"departure_location"`
	ArrivalLocation   string   `json:"arrival_location"`
	DepartureStation  string   `json:"departure_station,omitempty"`
	ArrivalStation    string   `json:"arrival_station,omitempty"`
	DepartureTime     string   `json:"departure_time,omitempty"`
	ArrivalTime       string   `json:"arrival_time,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	BookingURL        string   `json:"booking_url,omitempty"`
}

type GeneratedPlanResponse struct {
	SessionID string        `json:"session_id"`
	Plan      ItineraryPlan `json:"plan"`
}
