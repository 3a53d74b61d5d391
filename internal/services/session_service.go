package services

import (
	"encoding/json"
	"fmt"
	"time"

	"roamwarrior/internal/contract"
	"roamwarrior/internal/models/response_models"
	mem "roamwarrior/pkg/memcache"
	"roamwarrior/pkg/utils"
)

// SessionServiceInterface owns the single active itinerary per session:
// created empty at session start, populated by generation, replaced by
// refinement, reordered by the client, cleared at session end.
type SessionServiceInterface interface {
	SavePlan(sessionID string, plan response_models.ItineraryPlan) error
	GetPlan(sessionID string) (response_models.ItineraryPlan, error)
	ReorderDays(sessionID string, order []string) (*response_models.ItineraryPlan, error)
	ClearSession(sessionID string)
}

type SessionService struct {
	store mem.PlanSessionStore
	ttl   time.Duration
}

func NewSessionService(store mem.PlanSessionStore, ttl time.Duration) SessionServiceInterface {
	return &SessionService{
		store: store,
		ttl:   ttl,
	}
}

func (s *SessionService) SavePlan(sessionID string, plan response_models.ItineraryPlan) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", utils.ErrInvalidInput)
	}
	if err := contract.ValidateItineraryPlan(plan); err != nil {
		return err
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	s.store.Put(sessionID, raw, s.ttl)
	return nil
}

func (s *SessionService) GetPlan(sessionID string) (response_models.ItineraryPlan, error) {
	var plan response_models.ItineraryPlan

	raw, ok := s.store.Get(sessionID)
	if !ok {
		return plan, utils.ErrPlanNotFound
	}
	if err := json.Unmarshal(raw, &plan); err != nil {
		return plan, fmt.Errorf("%w: stored plan unreadable: %v", utils.ErrPlanNotFound, err)
	}
	return plan, nil
}

// ReorderDays permutes the day sequence of the stored plan. Day contents are
// never touched; order must list every current day label exactly once.
func (s *SessionService) ReorderDays(sessionID string, order []string) (*response_models.ItineraryPlan, error) {
	plan, err := s.GetPlan(sessionID)
	if err != nil {
		return nil, err
	}

	if len(order) != len(plan.Days) {
		return nil, fmt.Errorf("%w: order has %d entries, plan has %d days", utils.ErrInvalidInput, len(order), len(plan.Days))
	}

	// Day labels are only advisory-unique, so match by multiset: each label
	// in order consumes one remaining day with that label, in plan order.
	remaining := make(map[string][]int)
	for i, day := range plan.Days {
		remaining[day.Day] = append(remaining[day.Day], i)
	}

	reordered := make([]response_models.PlanDay, 0, len(plan.Days))
	for _, label := range order {
		idxs := remaining[label]
		if len(idxs) == 0 {
			return nil, fmt.Errorf("%w: order is not a permutation of the plan's day labels (unknown or repeated label %q)", utils.ErrInvalidInput, label)
		}
		reordered = append(reordered, plan.Days[idxs[0]])
		remaining[label] = idxs[1:]
	}

	plan.Days = reordered
	if err := s.SavePlan(sessionID, plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *SessionService) ClearSession(sessionID string) {
	s.store.Delete(sessionID)
}
