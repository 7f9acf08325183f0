package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripforge/models"
	"tripforge/services/trip"
	"tripforge/utils"
)

// PlannerHandler exposes the conversational planning sessions over HTTP.
type PlannerHandler struct {
	registry *SessionRegistry
	logger   *zap.Logger
}

// NewPlannerHandler wires the handler to the session registry.
func NewPlannerHandler(registry *SessionRegistry, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{registry: registry, logger: logger}
}

// CreateSessionRequest optionally seeds the conversation with the user's
// first message (the landing-page input).
type CreateSessionRequest struct {
	Message string `json:"message"`
}

// StepInputRequest is one typed input for the current conversation step.
// Kind selects which of the remaining fields are read.
type StepInputRequest struct {
	Kind string `json:"kind" binding:"required"`

	Text        string   `json:"text,omitempty"`        // kind=text
	Date        string   `json:"date,omitempty"`        // kind=date, YYYY-MM-DD
	Adults      int      `json:"adults,omitempty"`      // kind=travelers
	Children    int      `json:"children,omitempty"`    // kind=travelers
	Infants     int      `json:"infants,omitempty"`     // kind=travelers
	Ages        []int    `json:"ages,omitempty"`        // kind=ages
	Budget      string   `json:"budget,omitempty"`      // kind=budget
	Themes      []string `json:"themes,omitempty"`      // kind=themes
	Constraints []string `json:"constraints,omitempty"` // kind=constraints
	Include     *bool    `json:"include,omitempty"`     // kind=flights|accommodation
	Preference  string   `json:"preference,omitempty"`  // kind=flights
	StarRating  string   `json:"starRating,omitempty"`  // kind=accommodation
	Accepted    *bool    `json:"accepted,omitempty"`    // kind=confirm
}

// SessionState is the read model returned for every session endpoint.
type SessionState struct {
	SessionID    string               `json:"sessionId"`
	Step         trip.Step            `json:"step"`
	Draft        models.TripDraft     `json:"draft"`
	Messages     []models.ChatMessage `json:"messages"`
	Suggestions  []models.Suggestion  `json:"suggestions,omitempty"`
	HasItinerary bool                 `json:"hasItinerary"`
}

func sessionState(s *PlanningSession) SessionState {
	return SessionState{
		SessionID:    s.ID,
		Step:         s.Machine.Step(),
		Draft:        s.Store.Draft(),
		Messages:     s.Store.Messages(),
		Suggestions:  s.Machine.Suggestions(),
		HasItinerary: s.Store.Itinerary() != nil,
	}
}

// CreateSession opens a planning session.
func (h *PlannerHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	session := h.registry.Create(req.Message)
	h.logger.Info("planning session created", zap.String("sessionId", session.ID))
	c.JSON(http.StatusCreated, sessionState(session))
}

// GetSession returns the current conversation state.
func (h *PlannerHandler) GetSession(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	c.JSON(http.StatusOK, sessionState(session))
}

// SubmitInput feeds one typed input to the session's step machine.
func (h *PlannerHandler) SubmitInput(c *gin.Context) {
	session, ok := h.registry.Get(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}

	var req StepInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.apply(session, req)
	switch {
	case errors.Is(err, trip.ErrInvalidInput):
		utils.JSONError(c, http.StatusUnprocessableEntity, "input rejected for current step", string(session.Machine.Step()))
		return
	case errors.Is(err, trip.ErrGenerating):
		utils.JSONError(c, http.StatusConflict, "itinerary generation in progress", "")
		return
	case err != nil:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	c.JSON(http.StatusOK, sessionState(session))
}

func (h *PlannerHandler) apply(session *PlanningSession, req StepInputRequest) error {
	m := session.Machine
	switch req.Kind {
	case "text":
		return m.Submit(trip.TextInput{Text: req.Text})
	case "date":
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return err
		}
		return m.PickDate(day)
	case "travelers":
		return m.Submit(trip.TravelersInput{Adults: req.Adults, Children: req.Children, Infants: req.Infants})
	case "ages":
		return m.Submit(trip.ChildrenAgesInput{Ages: req.Ages})
	case "budget":
		return m.Submit(trip.BudgetInput{Tier: models.BudgetTier(req.Budget)})
	case "themes":
		return m.Submit(trip.ThemesInput{Themes: req.Themes})
	case "constraints":
		return m.Submit(trip.ConstraintsInput{Constraints: req.Constraints})
	case "flights":
		if req.Include == nil {
			return trip.ErrInvalidInput
		}
		return m.Submit(trip.FlightsInput{Include: *req.Include, Preference: req.Preference})
	case "accommodation":
		if req.Include == nil {
			return trip.ErrInvalidInput
		}
		return m.Submit(trip.AccommodationInput{Include: *req.Include, StarRating: req.StarRating})
	case "confirm":
		if req.Accepted == nil {
			return trip.ErrInvalidInput
		}
		return m.Submit(trip.ConfirmInput{Accepted: *req.Accepted})
	}
	return trip.ErrInvalidInput
}

// EndSession removes the session and clears its stored backend identifier.
func (h *PlannerHandler) EndSession(c *gin.Context) {
	id := c.Param("sessionID")
	if !h.registry.Remove(c.Request.Context(), id) {
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
		return
	}
	h.logger.Info("planning session ended", zap.String("sessionId", id))
	c.Status(http.StatusNoContent)
}
