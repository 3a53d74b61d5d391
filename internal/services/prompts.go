package services

import (
	"fmt"
	"strings"

	"roamwarrior/internal/models/request_models"
)

const planSchemaExample = `{
  "days": [
    {
      "day": "Day 1",
      "title": "Arrival and old town walk",
      "description": "Land in the arrival city, check in, explore the old town on foot.",
      "points_of_interest": [
        {"name": "Senso-ji", "location": "Asakusa, Tokyo", "description": "Oldest temple in the city"}
      ],
      "transportation": {
        "mode": "train",
        "departure_location": "Narita Airport",
        "arrival_location": "Tokyo Station",
        "departure_station": "Narita Terminal 1",
        "arrival_station": "Tokyo Station",
        "departure_time": "14:30",
        "arrival_time": "15:45",
        "price": 30,
        "booking_url": "https://example.com"
      }
    }
  ]
}`

// buildGenerationPrompt embeds every field of the request and spells out the
// structural requirements the plan must satisfy. The model still cannot be
// trusted; the response is re-validated after parsing.
func buildGenerationPrompt(req request_models.TravelRequest, dayCount int) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for a trip to %s.\n\n", dayCount, req.Destination))
	prompt.WriteString(fmt.Sprintf("Trip dates: %s\n", req.Dates))
	prompt.WriteString(fmt.Sprintf("Arrival city: %s\n", req.ArrivalCity))
	prompt.WriteString(fmt.Sprintf("Departure city: %s\n", req.DepartureCity))
	prompt.WriteString(fmt.Sprintf("Desired activities: %s\n", req.DesiredActivities))
	if len(req.Locations) > 0 {
		prompt.WriteString(fmt.Sprintf("Specific locations to include: %s\n", strings.Join(req.Locations, ", ")))
	}
	if strings.TrimSpace(req.Feedback) != "" {
		prompt.WriteString(fmt.Sprintf("Feedback on a previous attempt, to take into account: %s\n", req.Feedback))
	}

	prompt.WriteString("\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. Generate exactly %d days\n", dayCount))
	prompt.WriteString(fmt.Sprintf("2. Day 1 must take place in %s (the arrival city)\n", req.ArrivalCity))
	prompt.WriteString(fmt.Sprintf("3. The final day must take place in %s (the departure city)\n", req.DepartureCity))
	prompt.WriteString("4. Every day needs a unique \"day\" label, a short title, and a narrative description\n")
	prompt.WriteString("5. Points of interest and transportation are optional per day; when present, points of interest need name and location, transportation needs mode, departure_location and arrival_location\n")
	prompt.WriteString("6. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(planSchemaExample)

	return prompt.String()
}

func buildRefinementPrompt(priorPlanJSON, feedback, preferences string) string {
	var prompt strings.Builder

	prompt.WriteString("Revise the travel itinerary below according to the traveler's feedback. ")
	prompt.WriteString("Return a complete replacement itinerary, not a diff.\n\n")
	prompt.WriteString("Current itinerary (JSON):\n")
	prompt.WriteString(priorPlanJSON)
	prompt.WriteString("\n\nTraveler feedback: ")
	prompt.WriteString(feedback)
	if strings.TrimSpace(preferences) != "" {
		prompt.WriteString("\nTraveler preferences: ")
		prompt.WriteString(preferences)
	}

	prompt.WriteString("\n\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Keep the same JSON structure as the current itinerary\n")
	prompt.WriteString("2. Every day needs a unique \"day\" label, a short title, and a narrative description\n")
	prompt.WriteString("3. Return ONLY valid JSON, no extra text\n\n")
	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(planSchemaExample)

	return prompt.String()
}

func buildPlacesPrompt(req request_models.PlacesRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Recommend points of interest for a trip to %s.\n", req.Destination))
	if req.ArrivalCity != "" {
		prompt.WriteString(fmt.Sprintf("The trip starts in %s", req.ArrivalCity))
		if req.DepartureCity != "" {
			prompt.WriteString(fmt.Sprintf(" and ends in %s", req.DepartureCity))
		}
		prompt.WriteString(".\n")
	}
	prompt.WriteString(fmt.Sprintf("The traveler is interested in: %s\n\n", req.DesiredActivities))

	prompt.WriteString("Return 5-10 recommendations as JSON in this EXACT format, no extra text:\n")
	prompt.WriteString(`{
  "places": [
    {"name": "Fushimi Inari", "location": "Kyoto", "type": "shrine", "description": "Thousands of torii gates"}
  ]
}`)

	return prompt.String()
}

func buildStayPrompt(req request_models.StayRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Recommend lodging and transportation for a trip to %s.\n\n", req.Destination))
	prompt.WriteString("Itinerary:\n")
	prompt.WriteString(req.Itinerary)
	prompt.WriteString("\n")
	if strings.TrimSpace(req.Preferences) != "" {
		prompt.WriteString(fmt.Sprintf("Traveler preferences: %s\n", req.Preferences))
	}
	if len(req.Candidates) > 0 {
		prompt.WriteString("\nChoose ONLY from these candidate options:\n")
		for _, candidate := range req.Candidates {
			prompt.WriteString(fmt.Sprintf("- %s\n", candidate))
		}
	} else {
		prompt.WriteString("\nNo candidate list is available; propose realistic options yourself.\n")
	}

	prompt.WriteString("\nReturn JSON in this EXACT format, no extra text:\n")
	prompt.WriteString(`{
  "options": [
    {"name": "Hotel Gracery", "kind": "lodging", "location": "Shinjuku", "description": "Mid-range, near the station", "price": 120}
  ]
}`)

	return prompt.String()
}
