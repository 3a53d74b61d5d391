package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"roamwarrior/internal/contract"
	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/models/response_models"
	"roamwarrior/pkg/utils"
)

type ItineraryServiceInterface interface {
	GeneratePlan(ctx context.Context, sessionID string, req request_models.TravelRequest) (*response_models.GeneratedPlanResponse, error)
	RefinePlan(ctx context.Context, sessionID string, feedback string, preferences string) (*response_models.GeneratedPlanResponse, error)
}

type ItineraryService struct {
	aiClient utils.CompletionClientInterface
	sessions SessionServiceInterface
	timeout  time.Duration
}

func NewItineraryService(
	aiClient utils.CompletionClientInterface,
	sessions SessionServiceInterface,
	timeout time.Duration,
) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient: aiClient,
		sessions: sessions,
		timeout:  timeout,
	}
}

func (s *ItineraryService) GeneratePlan(ctx context.Context, sessionID string, req request_models.TravelRequest) (*response_models.GeneratedPlanResponse, error) {
	if err := contract.ValidateTravelRequest(req); err != nil {
		return nil, err
	}

	dayCount := req.DayCount
	if dayCount == 0 {
		dayCount = contract.ExtractDayCount(req.Dates)
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	prompt := buildGenerationPrompt(req, dayCount)
	rawJSON, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(rawJSON)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SavePlan(sessionID, *plan); err != nil {
		return nil, err
	}

	log.Printf("Generated %d-day plan for session %s via %s", len(plan.Days), sessionID, s.aiClient.Name())

	return &response_models.GeneratedPlanResponse{
		SessionID: sessionID,
		Plan:      *plan,
	}, nil
}

func (s *ItineraryService) RefinePlan(ctx context.Context, sessionID string, feedback string, preferences string) (*response_models.GeneratedPlanResponse, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, fmt.Errorf("%w: feedback must not be empty", utils.ErrInvalidInput)
	}

	prior, err := s.sessions.GetPlan(sessionID)
	if err != nil {
		return nil, err
	}

	priorJSON, err := json.Marshal(prior)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	prompt := buildRefinementPrompt(string(priorJSON), feedback, preferences)
	rawJSON, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(rawJSON)
	if err != nil {
		return nil, err
	}

	// Only a fully validated replacement may overwrite the stored plan; any
	// failure above leaves the last-known-good itinerary untouched.
	if err := s.sessions.SavePlan(sessionID, *plan); err != nil {
		return nil, err
	}

	log.Printf("Refined plan for session %s, now %d day(s)", sessionID, len(plan.Days))

	return &response_models.GeneratedPlanResponse{
		SessionID: sessionID,
		Plan:      *plan,
	}, nil
}

// complete performs the single bounded round trip to the completion service
// and maps transport failures onto the error taxonomy. Never retried.
func (s *ItineraryService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rawJSON, err := s.aiClient.CompleteJSON(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", utils.ErrTimeout, s.timeout)
		}
		return "", fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(rawJSON) == "" {
		return "", fmt.Errorf("%w: empty completion", utils.ErrGenerationFailed)
	}
	return rawJSON, nil
}

// parsePlan converts completion output into a validated ItineraryPlan. An
// empty-but-parseable plan is rejected here rather than passed through.
func parsePlan(rawJSON string) (*response_models.ItineraryPlan, error) {
	var plan response_models.ItineraryPlan
	if err := json.Unmarshal([]byte(rawJSON), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}

	if err := contract.ValidateItineraryPlan(plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}

	return &plan, nil
}
