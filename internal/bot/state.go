package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studioquote-bot/pkg/redis"
)

const (
	StepPlanSelection  = "plan_selection"
	StepWeddingBilling = "wedding_billing"
	StepCameraCount    = "camera_count"
	StepDuration       = "duration"
	StepPets           = "pets"
	StepPetCount       = "pet_count"
	StepTravelZone     = "travel_zone"
	StepExtras         = "extras"
	StepQuote          = "quote"
)

// ExtraCharge is a user-typed ad-hoc line. Stored verbatim; filtering of
// blank or zero entries happens in the pricing engine.
type ExtraCharge struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// QuoteDraft is everything the user has selected so far. The full quote is
// recomputed from the draft on every change, nothing is accumulated.
type QuoteDraft struct {
	PlanKey            string        `json:"plan_key,omitempty"`
	BillingMode        string        `json:"billing_mode,omitempty"`
	CameraCount        string        `json:"camera_count,omitempty"`
	DurationHours      float64       `json:"duration_hours,omitempty"`
	HasPets            bool          `json:"has_pets,omitempty"`
	PetCount           int           `json:"pet_count,omitempty"`
	TravelZone         string        `json:"travel_zone,omitempty"`
	CustomOvertimeRate *float64      `json:"custom_overtime_rate,omitempty"`
	Extras             []ExtraCharge `json:"extras,omitempty"`
}

type UserState struct {
	Step  string     `json:"step"`
	Draft QuoteDraft `json:"draft"`
}

type StateStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStateStorage(redisClient *redis.Client) *StateStorage {
	return &StateStorage{
		redis: redisClient,
		ttl:   redisClient.TTL(),
	}
}

func (s *StateStorage) Save(ctx context.Context, chatID int64, state UserState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.redis.Set(ctx, getStateKey(chatID), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Get returns the chat's state, or a fresh one when the session expired.
func (s *StateStorage) Get(ctx context.Context, chatID int64) (UserState, error) {
	data, err := s.redis.Get(ctx, getStateKey(chatID))
	if redis.IsNil(err) {
		return UserState{Step: StepPlanSelection}, nil
	}
	if err != nil {
		return UserState{}, fmt.Errorf("failed to get state: %w", err)
	}

	var state UserState
	if err := json.Unmarshal(data, &state); err != nil {
		return UserState{}, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return state, nil
}

func (s *StateStorage) Clear(ctx context.Context, chatID int64) error {
	if err := s.redis.Del(ctx, getStateKey(chatID)); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}

func (s *StateStorage) update(ctx context.Context, chatID int64, mutate func(*UserState)) error {
	state, err := s.Get(ctx, chatID)
	if err != nil {
		state = UserState{Step: StepPlanSelection}
	}
	mutate(&state)
	return s.Save(ctx, chatID, state)
}

func (s *StateStorage) SetStep(ctx context.Context, chatID int64, step string) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Step = step
	})
}

// SetPlan records the selected plan and drops every draft field that only
// made sense for the previous plan. The rate override survives plan changes.
func (s *StateStorage) SetPlan(ctx context.Context, chatID int64, planKey string) error {
	return s.update(ctx, chatID, func(state *UserState) {
		rate := state.Draft.CustomOvertimeRate
		state.Draft = QuoteDraft{
			PlanKey:            planKey,
			CustomOvertimeRate: rate,
		}
	})
}

func (s *StateStorage) SetBillingMode(ctx context.Context, chatID int64, mode string) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.BillingMode = mode
	})
}

func (s *StateStorage) SetCameraCount(ctx context.Context, chatID int64, cameras string) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.CameraCount = cameras
	})
}

func (s *StateStorage) SetDuration(ctx context.Context, chatID int64, hours float64) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.DurationHours = hours
	})
}

func (s *StateStorage) SetPets(ctx context.Context, chatID int64, hasPets bool) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.HasPets = hasPets
		if !hasPets {
			state.Draft.PetCount = 0
		}
	})
}

func (s *StateStorage) SetPetCount(ctx context.Context, chatID int64, count int) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.PetCount = count
	})
}

func (s *StateStorage) SetTravelZone(ctx context.Context, chatID int64, label string) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.TravelZone = label
	})
}

// SetCustomRate stores the overtime rate override. nil clears it; a pointer
// to 0 keeps the distinction between "free overtime" and "no override".
func (s *StateStorage) SetCustomRate(ctx context.Context, chatID int64, rate *float64) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.CustomOvertimeRate = rate
	})
}

func (s *StateStorage) AddExtra(ctx context.Context, chatID int64, name string, amount float64) error {
	return s.update(ctx, chatID, func(state *UserState) {
		state.Draft.Extras = append(state.Draft.Extras, ExtraCharge{
			ID:     fmt.Sprintf("%d", time.Now().UnixNano()),
			Name:   name,
			Amount: amount,
		})
	})
}

// CheckRateLimit reports whether the chat exceeded limit actions per window.
func (s *StateStorage) CheckRateLimit(ctx context.Context, chatID int64, action string, limit int64, window time.Duration) (bool, error) {
	key := fmt.Sprintf("ratelimit:%d:%s", chatID, action)

	count, err := s.redis.Incr(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if _, err := s.redis.Expire(ctx, key, window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > limit, nil
}

func getStateKey(chatID int64) string {
	return fmt.Sprintf("state:%d", chatID)
}
