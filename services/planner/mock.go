package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripforge/models"
)

// MockSessionID is the fixed identifier handed out by the mock backend.
const MockSessionID = "mock-session-123"

// MockService produces structurally identical responses to the live backend
// from only the trip draft (generation) or a short message (follow-up), using
// canned content. Generation is deterministic for a given draft.
type MockService struct {
	sessions SessionStore
	now      func() time.Time
}

// NewMockService returns a mock backend. now defaults to time.Now when nil.
func NewMockService(sessions SessionStore, now func() time.Time) *MockService {
	if now == nil {
		now = time.Now
	}
	return &MockService{sessions: sessions, now: now}
}

// Generate builds a canned itinerary: one day per draft day, three fixed
// activities each, total cost of 120 per day.
func (s *MockService) Generate(ctx context.Context, draft models.TripDraft) (*models.PlannerResponse, error) {
	duration := draft.Duration
	if duration == 0 {
		duration = 3
	}
	start := s.now()
	if draft.Dates != nil {
		start = draft.Dates.Start
	}

	days := make([]models.ItineraryDay, 0, duration)
	for i := 0; i < duration; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, models.ItineraryDay{
			Date: date.Format(time.RFC3339),
			Activities: []models.Activity{
				{
					ID:          fmt.Sprintf("activity-%d-1", i),
					Time:        "09:00",
					Title:       "Morning Activity",
					Description: "Start your day with an exciting local experience",
					Location:    draft.DestinationCity,
					Cost:        50,
					Category:    "Culture",
					Duration:    "2 hours",
				},
				{
					ID:          fmt.Sprintf("activity-%d-2", i),
					Time:        "12:00",
					Title:       "Lunch Break",
					Description: "Enjoy local cuisine at a popular restaurant",
					Location:    "City Center",
					Cost:        30,
					Category:    "Food",
					Duration:    "1.5 hours",
				},
				{
					ID:          fmt.Sprintf("activity-%d-3", i),
					Time:        "14:00",
					Title:       "Afternoon Adventure",
					Description: "Explore local attractions and sights",
					Location:    "Various Locations",
					Cost:        40,
					Category:    "Sightseeing",
					Duration:    "3 hours",
				},
			},
			Weather: &models.Weather{Temp: 25, Condition: "Sunny", Icon: "☀️"},
		})
	}

	travelers := models.Travelers{Adults: 1}
	if draft.Travelers != nil {
		travelers = *draft.Travelers
	}
	budget := draft.Budget
	if budget == "" {
		budget = models.BudgetModerate
	}

	resp := &models.PlannerResponse{
		SessionID: MockSessionID,
		Message:   "✨ I've created a personalized itinerary based on your preferences!",
		Itinerary: &models.Itinerary{
			ID:        "mock-itinerary-123",
			Title:     fmt.Sprintf("%d-Day Trip to %s", duration, draft.DestinationCity),
			Summary:   fmt.Sprintf("A %s itinerary focused on %s", budget, strings.Join(draft.Themes, ", ")),
			Days:      days,
			TotalCost: float64(duration * 120),
			Currency:  "USD",
			Metadata: &models.ItineraryMetadata{
				DestinationCity: draft.DestinationCity,
				Duration:        duration,
				Travelers:       travelers,
				Budget:          budget,
				Themes:          append([]string{}, draft.Themes...),
			},
		},
		Suggestions: []models.Suggestion{
			{Type: models.SuggestionQuestion, Text: "Would you like to see more restaurant options?"},
			{Type: models.SuggestionQuestion, Text: "I can suggest alternative activities if you prefer"},
			{Type: models.SuggestionQuestion, Text: "Would you like more details about any specific activity?"},
		},
	}

	if err := s.sessions.Set(ctx, resp.SessionID); err != nil {
		return nil, fmt.Errorf("store planner session: %w", err)
	}
	return resp, nil
}

// FollowUp answers from a canned table keyed by the seeded suggestion texts,
// with a generic fallback for anything else.
func (s *MockService) FollowUp(ctx context.Context, message string) (*models.PlannerResponse, error) {
	resp, ok := mockFollowUps[message]
	if !ok {
		resp = models.PlannerResponse{
			SessionID:          MockSessionID,
			Message:            "I can help you with that. Could you please be more specific?",
			IsFollowUpQuestion: true,
			Suggestions: []models.Suggestion{
				{Type: models.SuggestionQuestion, Text: "Would you like to modify the schedule?"},
				{Type: models.SuggestionQuestion, Text: "Should we look at different activities?"},
				{Type: models.SuggestionQuestion, Text: "Do you want to change the budget range?"},
			},
		}
	}
	if err := s.sessions.Set(ctx, resp.SessionID); err != nil {
		return nil, fmt.Errorf("store planner session: %w", err)
	}
	out := resp
	return &out, nil
}

// ClearSession forgets the stored session identifier.
func (s *MockService) ClearSession(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

var mockFollowUps = map[string]models.PlannerResponse{
	"Would you like to see more restaurant options?": {
		SessionID:          MockSessionID,
		Message:            "I can suggest several great dining options. What type of cuisine are you interested in?",
		IsFollowUpQuestion: true,
		Suggestions: []models.Suggestion{
			{Type: models.SuggestionQuestion, Text: "Local authentic cuisine"},
			{Type: models.SuggestionQuestion, Text: "International restaurants"},
			{Type: models.SuggestionQuestion, Text: "Fine dining experiences"},
			{Type: models.SuggestionQuestion, Text: "Family-friendly restaurants"},
		},
	},
	"I can suggest alternative activities if you prefer": {
		SessionID:          MockSessionID,
		Message:            "I can help you modify the activities. What would you like to focus on?",
		IsFollowUpQuestion: true,
		Suggestions: []models.Suggestion{
			{Type: models.SuggestionModification, Text: "More relaxed pace", Context: &models.SuggestionContext{Category: "pace"}},
			{Type: models.SuggestionModification, Text: "More outdoor activities", Context: &models.SuggestionContext{Category: "outdoor"}},
			{Type: models.SuggestionModification, Text: "More cultural experiences", Context: &models.SuggestionContext{Category: "culture"}},
		},
	},
	"Would you like more details about any specific activity?": {
		SessionID:          MockSessionID,
		Message:            "Which day or activity would you like to know more about?",
		IsFollowUpQuestion: true,
		Suggestions: []models.Suggestion{
			{Type: models.SuggestionQuestion, Text: "Tell me more about the morning activities", Context: &models.SuggestionContext{Category: "morning"}},
			{Type: models.SuggestionQuestion, Text: "What are the afternoon options?", Context: &models.SuggestionContext{Category: "afternoon"}},
			{Type: models.SuggestionQuestion, Text: "Details about evening activities", Context: &models.SuggestionContext{Category: "evening"}},
		},
	},
}
