package contract

import (
	"strings"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/models/response_models"
	"roamwarrior/pkg/utils"
)

// ValidateTravelRequest checks the wizard input before anything is sent to
// the completion service. All violated fields are reported together so the
// client can highlight every problem in one pass.
func ValidateTravelRequest(req request_models.TravelRequest) error {
	ve := &utils.ValidationError{}

	if strings.TrimSpace(req.Destination) == "" {
		ve.Add("destination is required")
	}
	if strings.TrimSpace(req.ArrivalCity) == "" {
		ve.Add("arrival_city is required")
	}
	if strings.TrimSpace(req.DepartureCity) == "" {
		ve.Add("departure_city is required")
	}
	if strings.TrimSpace(req.Dates) == "" {
		ve.Add("dates is required")
	}
	if strings.TrimSpace(req.DesiredActivities) == "" {
		ve.Add("desired_activities is required")
	}
	if req.DayCount < 0 {
		ve.Add("day_count must be a positive integer")
	}

	// The trip must have an interpretable duration: either an explicit day
	// count or a dates string the extractor understands.
	if req.DayCount == 0 && strings.TrimSpace(req.Dates) != "" && ExtractDayCount(req.Dates) == 0 {
		ve.Add("dates does not imply a duration; provide day_count or a dates string like \"5 days\"")
	}

	return ve.ErrOrNil()
}

// ValidateItineraryPlan checks a candidate plan, whether it arrived from the
// completion service or from a client save. Pure; no side effects.
func ValidateItineraryPlan(plan response_models.ItineraryPlan) error {
	ve := &utils.ValidationError{}

	if len(plan.Days) == 0 {
		ve.Add("plan must have at least one day")
		return ve.ErrOrNil()
	}

	for i, day := range plan.Days {
		if strings.TrimSpace(day.Day) == "" {
			ve.Add("day %d: day label is required", i+1)
		}
		if strings.TrimSpace(day.Title) == "" {
			ve.Add("day %d: title is required", i+1)
		}
		if strings.TrimSpace(day.Description) == "" {
			ve.Add("day %d: description is required", i+1)
		}

		for j, poi := range day.PointsOfInterest {
			if strings.TrimSpace(poi.Name) == "" {
				ve.Add("day %d, point of interest %d: name is required", i+1, j+1)
			}
			if strings.TrimSpace(poi.Location) == "" {
				ve.Add("day %d, point of interest %d: location is required", i+1, j+1)
			}
		}

		if leg := day.Transportation; leg != nil {
			if strings.TrimSpace(leg.Mode) == "" {
				ve.Add("day %d: transportation mode is required", i+1)
			}
			if strings.TrimSpace(leg.DepartureLocation) == "" {
				ve.Add("day %d: transportation departure_location is required", i+1)
			}
			if strings.TrimSpace(leg.ArrivalLocation) == "" {
				ve.Add("day %d: transportation arrival_location is required", i+1)
			}
			if leg.Price != nil && *leg.Price < 0 {
				ve.Add("day %d: transportation price must be non-negative", i+1)
			}
		}
	}

	return ve.ErrOrNil()
}
