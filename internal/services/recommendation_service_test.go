package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/models/response_models"
	"roamwarrior/pkg/utils"
)

func placesRequest() request_models.PlacesRequest {
	return request_models.PlacesRequest{
		Destination:       "Japan",
		ArrivalCity:       "Tokyo",
		DepartureCity:     "Osaka",
		DesiredActivities: "temples, hiking",
	}
}

func TestRecommendPlaces(t *testing.T) {
	t.Run("parses recommended places", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{
		  "places": [
		    {"name": "Fushimi Inari", "location": "Kyoto", "type": "shrine", "description": "Torii gates"},
		    {"name": "Mount Takao", "location": "Tokyo", "type": "hike"}
		  ]
		}`}
		svc := NewRecommendationService(client, 5*time.Second)

		places, err := svc.RecommendPlaces(context.Background(), placesRequest())
		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "Fushimi Inari", places[0].Name)
		assert.Contains(t, client.lastPrompt, "temples, hiking")
	})

	t.Run("missing destination is rejected before the network call", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc := NewRecommendationService(client, 5*time.Second)

		_, err := svc.RecommendPlaces(context.Background(), request_models.PlacesRequest{DesiredActivities: "hiking"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Zero(t, client.calls)
	})

	t.Run("empty list is malformed", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"places": []}`}
		svc := NewRecommendationService(client, 5*time.Second)

		_, err := svc.RecommendPlaces(context.Background(), placesRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedResponse)
	})

	t.Run("place without a location is malformed", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"places": [{"name": "Somewhere", "type": "park"}]}`}
		svc := NewRecommendationService(client, 5*time.Second)

		_, err := svc.RecommendPlaces(context.Background(), placesRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedResponse)
	})

	t.Run("transport failure is a generation error", func(t *testing.T) {
		client := &fakeCompletionClient{err: errors.New("503 service unavailable")}
		svc := NewRecommendationService(client, 5*time.Second)

		_, err := svc.RecommendPlaces(context.Background(), placesRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	})
}

func TestRecommendStay(t *testing.T) {
	stayRequest := func() request_models.StayRequest {
		return request_models.StayRequest{
			Destination: "Japan",
			Itinerary:   "Day 1: Tokyo. Day 2: Osaka.",
			Preferences: "mid-range budget",
		}
	}

	t.Run("parses stay options", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{
		  "options": [
		    {"name": "Hotel Gracery", "kind": "lodging", "location": "Shinjuku", "price": 120},
		    {"name": "JR Pass", "kind": "transport"}
		  ]
		}`}
		svc := NewRecommendationService(client, 5*time.Second)

		options, err := svc.RecommendStay(context.Background(), stayRequest())
		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, "lodging", options[0].Kind)
	})

	t.Run("candidate list constrains the prompt", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"options": [{"name": "Hotel A", "kind": "lodging"}]}`}
		svc := NewRecommendationService(client, 5*time.Second)

		req := stayRequest()
		req.Candidates = []string{"Hotel A", "Hotel B"}
		_, err := svc.RecommendStay(context.Background(), req)
		require.NoError(t, err)

		assert.Contains(t, client.lastPrompt, "ONLY from these candidate options")
		assert.Contains(t, client.lastPrompt, "Hotel B")
	})

	t.Run("no candidate list lets the model propose options", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"options": [{"name": "Hotel A", "kind": "lodging"}]}`}
		svc := NewRecommendationService(client, 5*time.Second)

		_, err := svc.RecommendStay(context.Background(), stayRequest())
		require.NoError(t, err)

		assert.Contains(t, client.lastPrompt, "No candidate list is available")
	})
}

func TestMergePlaceSelections(t *testing.T) {
	svc := NewRecommendationService(&fakeCompletionClient{}, time.Second)

	inari := response_models.RecommendedPlace{Name: "Fushimi Inari", Location: "Kyoto", Type: "shrine"}
	takao := response_models.RecommendedPlace{Name: "Mount Takao", Location: "Tokyo", Type: "hike"}

	t.Run("identical triple across calls collapses to one entry", func(t *testing.T) {
		merged := svc.MergePlaceSelections([]response_models.RecommendedPlace{inari}, []response_models.RecommendedPlace{inari, takao})
		assert.Len(t, merged, 2)

		merged = svc.MergePlaceSelections(merged, []response_models.RecommendedPlace{inari})
		assert.Len(t, merged, 2)
	})

	t.Run("single duplicate pair merges to size one", func(t *testing.T) {
		merged := svc.MergePlaceSelections(nil, []response_models.RecommendedPlace{inari, inari})
		assert.Len(t, merged, 1)
	})

	t.Run("identity is exact-string, not normalized", func(t *testing.T) {
		lowercase := response_models.RecommendedPlace{Name: "fushimi inari", Location: "Kyoto", Type: "shrine"}
		merged := svc.MergePlaceSelections([]response_models.RecommendedPlace{inari}, []response_models.RecommendedPlace{lowercase})
		assert.Len(t, merged, 2)
	})

	t.Run("first-seen order is preserved", func(t *testing.T) {
		merged := svc.MergePlaceSelections([]response_models.RecommendedPlace{takao}, []response_models.RecommendedPlace{inari, takao})
		require.Len(t, merged, 2)
		assert.Equal(t, "Mount Takao", merged[0].Name)
		assert.Equal(t, "Fushimi Inari", merged[1].Name)
	})
}
