package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamwarrior/internal/models/request_models"
	mem "roamwarrior/pkg/memcache"
	"roamwarrior/pkg/utils"
)

// fakeCompletionClient substitutes the non-deterministic completion service
// with canned output.
type fakeCompletionClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeCompletionClient) Name() string { return "fake" }

func (f *fakeCompletionClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const tokyoOsakaPlanJSON = `{
  "days": [
    {
      "day": "Day 1",
      "title": "Arrival in Tokyo",
      "description": "Land in Tokyo, check in, evening food walk in Asakusa.",
      "points_of_interest": [
        {"name": "Senso-ji", "location": "Asakusa, Tokyo"}
      ],
      "transportation": {
        "mode": "train",
        "departure_location": "Narita Airport",
        "arrival_location": "Tokyo Station"
      }
    },
    {
      "day": "Day 2",
      "title": "Departure from Osaka",
      "description": "Morning in Dotonbori, fly out of Osaka in the evening."
    }
  ]
}`

func newTestHarness(client utils.CompletionClientInterface) (ItineraryServiceInterface, SessionServiceInterface, *mem.PlanSessions) {
	store := mem.NewPlanSessions()
	sessions := NewSessionService(store, time.Hour)
	itinerary := NewItineraryService(client, sessions, 5*time.Second)
	return itinerary, sessions, store
}

func tokyoOsakaRequest() request_models.TravelRequest {
	return request_models.TravelRequest{
		Destination:       "Japan",
		ArrivalCity:       "Tokyo",
		DepartureCity:     "Osaka",
		Dates:             "7 days",
		DesiredActivities: "food, temples",
	}
}

func TestGeneratePlan(t *testing.T) {
	t.Run("valid request produces a stored, validated plan", func(t *testing.T) {
		client := &fakeCompletionClient{response: tokyoOsakaPlanJSON}
		svc, sessions, _ := newTestHarness(client)

		resp, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.NotEmpty(t, resp.SessionID)
		require.Len(t, resp.Plan.Days, 2)
		assert.Contains(t, resp.Plan.Days[0].Description, "Tokyo")
		assert.Contains(t, resp.Plan.Days[1].Description, "Osaka")

		stored, err := sessions.GetPlan(resp.SessionID)
		require.NoError(t, err)
		assert.Equal(t, resp.Plan, stored)
	})

	t.Run("prompt embeds every request field and the structural rules", func(t *testing.T) {
		client := &fakeCompletionClient{response: tokyoOsakaPlanJSON}
		svc, _, _ := newTestHarness(client)

		req := tokyoOsakaRequest()
		req.Locations = []string{"Kyoto", "Nara"}
		req.Feedback = "less walking this time"

		_, err := svc.GeneratePlan(context.Background(), "", req)
		require.NoError(t, err)

		assert.Contains(t, client.lastPrompt, "Japan")
		assert.Contains(t, client.lastPrompt, "Tokyo")
		assert.Contains(t, client.lastPrompt, "Osaka")
		assert.Contains(t, client.lastPrompt, "food, temples")
		assert.Contains(t, client.lastPrompt, "Kyoto, Nara")
		assert.Contains(t, client.lastPrompt, "less walking this time")
		assert.Contains(t, client.lastPrompt, "7-day")
		assert.Contains(t, client.lastPrompt, "unique")
	})

	t.Run("supplied session id is reused", func(t *testing.T) {
		client := &fakeCompletionClient{response: tokyoOsakaPlanJSON}
		svc, _, _ := newTestHarness(client)

		resp, err := svc.GeneratePlan(context.Background(), "wizard-42", tokyoOsakaRequest())
		require.NoError(t, err)
		assert.Equal(t, "wizard-42", resp.SessionID)
	})

	t.Run("invalid request never reaches the completion service", func(t *testing.T) {
		client := &fakeCompletionClient{response: tokyoOsakaPlanJSON}
		svc, _, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "", request_models.TravelRequest{})
		require.Error(t, err)

		_, ok := utils.AsValidationError(err)
		assert.True(t, ok)
		assert.Zero(t, client.calls)
	})

	t.Run("empty plan is rejected as malformed", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"days": []}`}
		svc, _, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedResponse)
		assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	})

	t.Run("unparseable output is rejected as malformed", func(t *testing.T) {
		client := &fakeCompletionClient{response: `not json at all`}
		svc, _, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedResponse)
	})

	t.Run("transport failure surfaces as generation error with cause", func(t *testing.T) {
		client := &fakeCompletionClient{err: errors.New("connection refused")}
		svc, _, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrGenerationFailed)
		assert.NotErrorIs(t, err, utils.ErrMalformedResponse)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("deadline exceeded surfaces as timeout", func(t *testing.T) {
		client := &fakeCompletionClient{err: fmt.Errorf("gemini: %w", context.DeadlineExceeded)}
		svc, _, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrTimeout)
		assert.NotErrorIs(t, err, utils.ErrGenerationFailed)
	})

	t.Run("failure leaves nothing stored", func(t *testing.T) {
		client := &fakeCompletionClient{response: `{"days": []}`}
		svc, sessions, _ := newTestHarness(client)

		_, err := svc.GeneratePlan(context.Background(), "wizard-42", tokyoOsakaRequest())
		require.Error(t, err)

		_, err = sessions.GetPlan("wizard-42")
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})
}

func TestRefinePlan(t *testing.T) {
	seed := func(t *testing.T, svc ItineraryServiceInterface, client *fakeCompletionClient) string {
		t.Helper()
		client.response = tokyoOsakaPlanJSON
		resp, err := svc.GeneratePlan(context.Background(), "", tokyoOsakaRequest())
		require.NoError(t, err)
		return resp.SessionID
	}

	t.Run("replacement plan is validated and stored wholesale", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, sessions, _ := newTestHarness(client)
		sessionID := seed(t, svc, client)

		client.response = `{
		  "days": [
		    {"day": "Day 1", "title": "Arrival", "description": "Arrive in Tokyo."},
		    {"day": "Day 2", "title": "Hiking", "description": "Hike Mount Takao."},
		    {"day": "Day 3", "title": "Departure", "description": "Leave from Osaka."}
		  ]
		}`

		resp, err := svc.RefinePlan(context.Background(), sessionID, "add more hiking on day 2", "")
		require.NoError(t, err)
		require.Len(t, resp.Plan.Days, 3)

		stored, err := sessions.GetPlan(sessionID)
		require.NoError(t, err)
		assert.Equal(t, resp.Plan, stored)
	})

	t.Run("prompt carries prior plan, feedback and preferences", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, _, _ := newTestHarness(client)
		sessionID := seed(t, svc, client)

		_, err := svc.RefinePlan(context.Background(), sessionID, "add more hiking on day 2", "vegetarian food")
		require.NoError(t, err)

		assert.Contains(t, client.lastPrompt, "Arrival in Tokyo")
		assert.Contains(t, client.lastPrompt, "add more hiking on day 2")
		assert.Contains(t, client.lastPrompt, "vegetarian food")
	})

	t.Run("failed refinement leaves stored plan byte-for-byte unchanged", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, _, store := newTestHarness(client)
		sessionID := seed(t, svc, client)

		before, ok := store.Get(sessionID)
		require.True(t, ok)
		snapshot := append([]byte(nil), before...)

		client.err = errors.New("rate limited")
		_, err := svc.RefinePlan(context.Background(), sessionID, "add more hiking", "")
		require.Error(t, err)

		after, ok := store.Get(sessionID)
		require.True(t, ok)
		assert.Equal(t, snapshot, []byte(after))
	})

	t.Run("malformed replacement leaves stored plan intact", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, sessions, _ := newTestHarness(client)
		sessionID := seed(t, svc, client)

		client.response = `{"days": []}`
		_, err := svc.RefinePlan(context.Background(), sessionID, "shuffle it all", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedResponse)

		stored, err := sessions.GetPlan(sessionID)
		require.NoError(t, err)
		assert.Len(t, stored.Days, 2)
	})

	t.Run("empty feedback is rejected", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, _, _ := newTestHarness(client)
		sessionID := seed(t, svc, client)

		_, err := svc.RefinePlan(context.Background(), sessionID, "   ", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("unknown session", func(t *testing.T) {
		client := &fakeCompletionClient{}
		svc, _, _ := newTestHarness(client)

		_, err := svc.RefinePlan(context.Background(), "missing", "feedback", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
		assert.Zero(t, client.calls)
	})
}
