package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.uber.org/zap"

	"tripforge/models"
	"tripforge/utils"
)

// HTTPService is the live planning-backend client. It issues a single
// attempt per call, captures the session identifier from the first
// successful response, and attaches it to every later request.
type HTTPService struct {
	baseURL  string
	client   *http.Client
	sessions SessionStore
	logger   *zap.Logger
}

// NewHTTPService returns a client for the planning backend at baseURL.
func NewHTTPService(baseURL string, sessions SessionStore, logger *zap.Logger) *HTTPService {
	return &HTTPService{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		sessions: sessions,
		logger:   logger,
	}
}

// Generate submits the completed trip draft for itinerary generation.
func (s *HTTPService) Generate(ctx context.Context, draft models.TripDraft) (*models.PlannerResponse, error) {
	body := models.GenerateRequest{TripDetails: draft, App: utils.PlannerAppTag}
	return s.post(ctx, "/", body)
}

// FollowUp forwards a free-text message on the established session.
func (s *HTTPService) FollowUp(ctx context.Context, message string) (*models.PlannerResponse, error) {
	id, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load planner session: %w", err)
	}
	body := models.FollowUpRequest{Message: message, App: utils.PlannerAppTag}
	if id != "" {
		body.SessionID = &id
	}
	return s.post(ctx, "/chat", body)
}

// ClearSession forgets the stored session identifier.
func (s *HTTPService) ClearSession(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *HTTPService) post(ctx context.Context, endpoint string, body interface{}) (*models.PlannerResponse, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid planner base URL: %w", err)
	}
	u.Path = path.Join(u.Path, endpoint)

	id, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load planner session: %w", err)
	}
	if id != "" {
		q := u.Query()
		q.Set("sessionId", id)
		u.RawQuery = q.Encode()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal planner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build planner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("planner returned non-success status", zap.String("status", resp.Status), zap.String("endpoint", endpoint))
		return nil, fmt.Errorf("planner returned status %s", resp.Status)
	}

	var out models.PlannerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode planner response: %w", err)
	}
	// Absent itinerary or suggestions just mean none this turn, but the
	// session identifier and assistant message are mandatory.
	if out.SessionID == "" || out.Message == "" {
		return nil, fmt.Errorf("planner response missing sessionId or message")
	}

	if err := s.sessions.Set(ctx, out.SessionID); err != nil {
		return nil, fmt.Errorf("store planner session: %w", err)
	}
	return &out, nil
}
