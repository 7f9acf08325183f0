package planner

import (
	"context"

	"tripforge/models"
)

// Service talks to an itinerary-generation backend. Generate submits a
// completed trip draft; FollowUp forwards a free-text message after an
// itinerary exists. Both issue exactly one request with no retries; a failed
// call is a terminal outcome for that attempt.
type Service interface {
	Generate(ctx context.Context, draft models.TripDraft) (*models.PlannerResponse, error)
	FollowUp(ctx context.Context, message string) (*models.PlannerResponse, error)
	ClearSession(ctx context.Context) error
}

// SessionStore persists the backend session identifier between requests.
// Get returns the empty string before any session has been established.
type SessionStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
