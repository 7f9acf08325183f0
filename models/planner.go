package models

// SuggestionType classifies a quick-reply chip returned by the planner.
type SuggestionType string

const (
	SuggestionModification   SuggestionType = "modification"
	SuggestionQuestion       SuggestionType = "question"
	SuggestionRecommendation SuggestionType = "recommendation"
)

// SuggestionContext points a suggestion at a specific part of the itinerary.
type SuggestionContext struct {
	ActivityID string `json:"activityId,omitempty"`
	DayIndex   *int   `json:"dayIndex,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Suggestion is a server-provided quick reply. Selecting one re-submits its
// text verbatim as a follow-up message.
type Suggestion struct {
	Type    SuggestionType     `json:"type"`
	Text    string             `json:"text"`
	Context *SuggestionContext `json:"context,omitempty"`
}

// GenerateRequest is the body posted to the planning backend's root endpoint.
type GenerateRequest struct {
	TripDetails TripDraft `json:"tripDetails"`
	App         string    `json:"app"`
}

// FollowUpRequest is the body posted to the planning backend's chat
// endpoint. SessionID is null until the first response establishes one.
type FollowUpRequest struct {
	Message   string  `json:"message"`
	SessionID *string `json:"sessionId"`
	App       string  `json:"app"`
}

// PlannerResponse is the normalized response from either planner endpoint.
// SessionID and Message are required; Itinerary and Suggestions are per-turn
// optional, absence simply meaning nothing of that kind this turn.
type PlannerResponse struct {
	SessionID          string       `json:"sessionId"`
	Message            string       `json:"message"`
	IsFollowUpQuestion bool         `json:"isFollowUpQuestion,omitempty"`
	Itinerary          *Itinerary   `json:"itinerary,omitempty"`
	Suggestions        []Suggestion `json:"suggestions,omitempty"`
}
