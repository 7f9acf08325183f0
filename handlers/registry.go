package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripforge/services/planner"
	"tripforge/services/trip"
)

// PlanningSession ties one trip-draft store and its step machine to the
// planner backend client scoped to that session.
type PlanningSession struct {
	ID        string
	Store     *trip.Store
	Machine   *trip.Machine
	Planner   planner.Service
	CreatedAt time.Time
}

// PlannerFactory builds the backend client for a new planning session.
type PlannerFactory func(planningSessionID string) planner.Service

// SessionRegistry owns all live planning sessions for this process.
// Sessions are in-memory only; ending one clears the stored backend session
// identifier as well.
type SessionRegistry struct {
	mu         sync.RWMutex
	sessions   map[string]*PlanningSession
	newPlanner PlannerFactory
	sched      trip.Scheduler
	delay      time.Duration
	maxNights  int
	logger     *zap.Logger
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry(newPlanner PlannerFactory, sched trip.Scheduler, delay time.Duration, maxNights int, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions:   make(map[string]*PlanningSession),
		newPlanner: newPlanner,
		sched:      sched,
		delay:      delay,
		maxNights:  maxNights,
		logger:     logger,
	}
}

// Create opens a new planning session, optionally seeded with the user's
// first message.
func (r *SessionRegistry) Create(seed string) *PlanningSession {
	id := uuid.New().String()
	store := trip.NewStore()
	svc := r.newPlanner(id)
	machine := trip.NewMachine(store, svc, r.sched, r.delay, r.maxNights, r.logger)

	session := &PlanningSession{
		ID:        id,
		Store:     store,
		Machine:   machine,
		Planner:   svc,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()

	machine.Start(seed)
	return session
}

// Get looks up a live session by identifier.
func (r *SessionRegistry) Get(id string) (*PlanningSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Remove ends a session: in-flight requests are abandoned and the stored
// backend session identifier is cleared.
func (r *SessionRegistry) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	session, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}

	session.Machine.Abort()
	if err := session.Planner.ClearSession(ctx); err != nil {
		r.logger.Warn("failed to clear planner session", zap.String("sessionId", id), zap.Error(err))
	}
	return true
}
