package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/models/response_models"
	"roamwarrior/pkg/utils"
)

type RecommendationServiceInterface interface {
	RecommendPlaces(ctx context.Context, req request_models.PlacesRequest) ([]response_models.RecommendedPlace, error)
	RecommendStay(ctx context.Context, req request_models.StayRequest) ([]response_models.StayOption, error)
	MergePlaceSelections(existing, incoming []response_models.RecommendedPlace) []response_models.RecommendedPlace
}

type RecommendationService struct {
	aiClient utils.CompletionClientInterface
	timeout  time.Duration
}

func NewRecommendationService(aiClient utils.CompletionClientInterface, timeout time.Duration) RecommendationServiceInterface {
	return &RecommendationService{
		aiClient: aiClient,
		timeout:  timeout,
	}
}

func (s *RecommendationService) RecommendPlaces(ctx context.Context, req request_models.PlacesRequest) ([]response_models.RecommendedPlace, error) {
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.DesiredActivities) == "" {
		return nil, fmt.Errorf("%w: destination and desired_activities are required", utils.ErrInvalidInput)
	}

	rawJSON, err := s.complete(ctx, buildPlacesPrompt(req))
	if err != nil {
		return nil, err
	}

	var resp response_models.PlacesResponse
	if err := json.Unmarshal([]byte(rawJSON), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if len(resp.Places) == 0 {
		return nil, fmt.Errorf("%w: no places returned", utils.ErrMalformedResponse)
	}
	for i, place := range resp.Places {
		if strings.TrimSpace(place.Name) == "" || strings.TrimSpace(place.Location) == "" {
			return nil, fmt.Errorf("%w: place %d is missing name or location", utils.ErrMalformedResponse, i+1)
		}
	}

	log.Printf("Recommended %d place(s) for %s via %s", len(resp.Places), req.Destination, s.aiClient.Name())
	return resp.Places, nil
}

func (s *RecommendationService) RecommendStay(ctx context.Context, req request_models.StayRequest) ([]response_models.StayOption, error) {
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.Itinerary) == "" {
		return nil, fmt.Errorf("%w: destination and itinerary are required", utils.ErrInvalidInput)
	}

	rawJSON, err := s.complete(ctx, buildStayPrompt(req))
	if err != nil {
		return nil, err
	}

	var resp response_models.StayResponse
	if err := json.Unmarshal([]byte(rawJSON), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if len(resp.Options) == 0 {
		return nil, fmt.Errorf("%w: no options returned", utils.ErrMalformedResponse)
	}
	for i, option := range resp.Options {
		if strings.TrimSpace(option.Name) == "" {
			return nil, fmt.Errorf("%w: option %d is missing a name", utils.ErrMalformedResponse, i+1)
		}
	}

	return resp.Options, nil
}

// MergePlaceSelections folds incoming recommendations into a running
// selection set, de-duplicating on the exact (name, location, type) triple.
// Differently-worded duplicates pass through; identity is not normalized.
func (s *RecommendationService) MergePlaceSelections(existing, incoming []response_models.RecommendedPlace) []response_models.RecommendedPlace {
	seen := make(map[string]bool)
	merged := make([]response_models.RecommendedPlace, 0, len(existing)+len(incoming))

	for _, place := range existing {
		if !seen[place.IdentityKey()] {
			seen[place.IdentityKey()] = true
			merged = append(merged, place)
		}
	}
	for _, place := range incoming {
		if !seen[place.IdentityKey()] {
			seen[place.IdentityKey()] = true
			merged = append(merged, place)
		}
	}

	return merged
}

func (s *RecommendationService) complete(ctx context.Context, prompt string) (string, error) {
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
