package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripforge/models"
)

type capturedRequest struct {
	path  string
	query string
	body  map[string]interface{}
}

func newCaptureServer(t *testing.T, respond func(i int) interface{}) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var calls []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		calls = append(calls, capturedRequest{
			path:  r.URL.Path,
			query: r.URL.Query().Get("sessionId"),
			body:  body,
		})
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(respond(len(calls))))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHTTPServiceGenerateCapturesSession(t *testing.T) {
	srv, calls := newCaptureServer(t, func(int) interface{} {
		return models.PlannerResponse{SessionID: "s-1", Message: "done"}
	})
	svc := NewHTTPService(srv.URL, NewMemorySessionStore(), zap.NewNop())

	resp, err := svc.Generate(context.Background(), testDraft())
	require.NoError(t, err)
	assert.Equal(t, "s-1", resp.SessionID)

	_, err = svc.FollowUp(context.Background(), "make day two lighter")
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	first, second := (*calls)[0], (*calls)[1]

	assert.Equal(t, "/", first.path)
	assert.Empty(t, first.query)
	assert.Equal(t, "itinerary-agents", first.body["app"])
	assert.Contains(t, first.body, "tripDetails")

	assert.Equal(t, "/chat", second.path)
	assert.Equal(t, "s-1", second.query)
	assert.Equal(t, "s-1", second.body["sessionId"])
	assert.Equal(t, "make day two lighter", second.body["message"])
}

func TestHTTPServiceFollowUpBeforeGenerate(t *testing.T) {
	srv, calls := newCaptureServer(t, func(int) interface{} {
		return models.PlannerResponse{SessionID: "s-9", Message: "hello"}
	})
	svc := NewHTTPService(srv.URL, NewMemorySessionStore(), zap.NewNop())

	// No session yet: the identifier must go out as an explicit null.
	resp, err := svc.FollowUp(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "s-9", resp.SessionID)

	_, err = svc.FollowUp(context.Background(), "again")
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	first, second := (*calls)[0], (*calls)[1]

	assert.Empty(t, first.query)
	v, present := first.body["sessionId"]
	assert.True(t, present)
	assert.Nil(t, v)

	assert.Equal(t, "s-9", second.query)
	assert.Equal(t, "s-9", second.body["sessionId"])
}

func TestHTTPServiceRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	svc := NewHTTPService(srv.URL, NewMemorySessionStore(), zap.NewNop())

	_, err := svc.Generate(context.Background(), testDraft())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPServiceRejectsIncompleteResponse(t *testing.T) {
	srv, _ := newCaptureServer(t, func(int) interface{} {
		return models.PlannerResponse{SessionID: "s-1"} // no message
	})
	store := NewMemorySessionStore()
	svc := NewHTTPService(srv.URL, store, zap.NewNop())

	_, err := svc.Generate(context.Background(), testDraft())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing sessionId or message")

	// A rejected response must not leak its session identifier.
	id, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestHTTPServiceClearSession(t *testing.T) {
	srv, calls := newCaptureServer(t, func(int) interface{} {
		return models.PlannerResponse{SessionID: "s-1", Message: "ok"}
	})
	svc := NewHTTPService(srv.URL, NewMemorySessionStore(), zap.NewNop())

	_, err := svc.Generate(context.Background(), testDraft())
	require.NoError(t, err)
	require.NoError(t, svc.ClearSession(context.Background()))

	_, err = svc.Generate(context.Background(), testDraft())
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	assert.Empty(t, (*calls)[1].query)
}
