package trip

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripforge/models"
	"tripforge/services/planner"
)

var (
	// ErrInvalidInput is returned when an input does not fit the current step.
	// The machine never advances on invalid input and nothing is mutated.
	ErrInvalidInput = errors.New("input not valid for current step")
	// ErrGenerating is returned for inputs arriving while an itinerary
	// request is in flight.
	ErrGenerating = errors.New("itinerary generation in progress")
)

const plannerFailedMessage = "Something went wrong while working on your trip. Please try again."

// Machine drives the onboarding conversation for one planning session. Each
// accepted input is validated, merged into the store, echoed as a user
// transcript line, and answered with the next prompt after a typing delay.
// Only one typing delay is ever in flight; inputs arriving during it are
// queued and processed once the pending prompt has been appended.
type Machine struct {
	mu      sync.Mutex
	store   *Store
	planner planner.Service
	sched   Scheduler
	delay   time.Duration
	logger  *zap.Logger

	step        Step
	dates       *DateSelector
	suggestions []models.Suggestion

	typing       bool
	cancelTyping func()
	queued       []func()
	generation   uint64
	aborted      bool
}

// NewMachine wires a machine to its session store and planning backend.
func NewMachine(store *Store, svc planner.Service, sched Scheduler, delay time.Duration, maxNights int, logger *zap.Logger) *Machine {
	return &Machine{
		store:   store,
		planner: svc,
		sched:   sched,
		delay:   delay,
		logger:  logger,
		step:    StepInitial,
		dates:   NewDateSelector(maxNights),
	}
}

// Start opens the conversation. A non-empty seed message is recorded as the
// user's first turn and acknowledged; otherwise the machine greets first.
func (m *Machine) Start(seed string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seed != "" {
		m.store.AppendMessage(models.RoleUser, seed)
		m.beginTyping("Great! Let me help you plan that trip. First, which city will you be departing from?", StepInitial)
		return
	}
	m.store.AppendMessage(models.RoleAssistant, "Hi! I'm your AI travel planner — tell me about your trip. Which city will you be departing from?")
}

// Step returns the current conversation step.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Suggestions returns the quick-reply chips from the latest planner response.
func (m *Machine) Suggestions() []models.Suggestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Suggestion(nil), m.suggestions...)
}

// Submit feeds one input to the machine. Inputs arriving while the assistant
// is "typing" are queued; queued inputs that turn out invalid for the step
// they land on are dropped.
func (m *Machine) Submit(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.typing {
		m.queued = append(m.queued, func() { _ = m.process(ev) })
		return nil
	}
	return m.process(ev)
}

// PickDate registers one tap of the travel-date picker. The first tap sets
// the start date; a valid second tap completes the range and advances.
func (m *Machine) PickDate(day time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.typing {
		m.queued = append(m.queued, func() { _ = m.pickDate(day) })
		return nil
	}
	return m.pickDate(day)
}

// Abort detaches the machine from any in-flight request or pending prompt.
// A response resolving afterwards is ignored.
func (m *Machine) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aborted = true
	m.generation++
	m.queued = nil
	if m.cancelTyping != nil {
		m.cancelTyping()
		m.cancelTyping = nil
	}
	m.typing = false
}

func (m *Machine) pickDate(day time.Time) error {
	if m.step != StepDates {
		return ErrInvalidInput
	}
	rng := m.dates.Pick(day)
	if rng == nil {
		// Pending start date, or a silently rejected end date.
		return nil
	}
	return m.process(DateRangeInput{Range: *rng, Nights: Nights(rng.Start, rng.End)})
}

// process runs one input to completion. Caller holds m.mu.
func (m *Machine) process(ev Event) error {
	switch m.step {
	case StepGenerating:
		return ErrGenerating
	case StepComplete:
		in, ok := ev.(TextInput)
		if !ok || in.Text == "" {
			return ErrInvalidInput
		}
		m.store.AppendMessage(models.RoleUser, in.Text)
		m.suggestions = nil
		m.dispatch(func(ctx context.Context) (*models.PlannerResponse, error) {
			return m.planner.FollowUp(ctx, in.Text)
		}, StepComplete)
		return nil
	}

	out, ok := Transition(m.step, m.store.Draft(), ev)
	if !ok {
		return ErrInvalidInput
	}
	if out.Patch != nil {
		m.store.MergeDraft(*out.Patch)
	}
	m.store.AppendMessage(models.RoleUser, out.Echo)
	m.suggestions = nil
	m.beginTyping(out.Prompt, out.Next)
	if out.Generate {
		draft := m.store.Draft()
		m.dispatch(func(ctx context.Context) (*models.PlannerResponse, error) {
			return m.planner.Generate(ctx, draft)
		}, StepConfirmation)
	}
	return nil
}

// beginTyping schedules the assistant prompt. The step advances only once
// the prompt lands in the transcript, keeping entries ordered.
func (m *Machine) beginTyping(prompt string, next Step) {
	m.typing = true
	m.cancelTyping = m.sched.After(m.delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.aborted {
			return
		}
		m.store.AppendMessage(models.RoleAssistant, prompt)
		m.step = next
		m.typing = false
		m.cancelTyping = nil
		m.drain()
	})
}

// dispatch issues exactly one planner request. fallback is the step to
// return to on failure. Caller holds m.mu.
func (m *Machine) dispatch(call func(context.Context) (*models.PlannerResponse, error), fallback Step) {
	gen := m.generation
	go func() {
		resp, err := call(context.Background())
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation != gen || m.aborted {
			// Session reset or abandoned while the request was in flight.
			return
		}
		apply := func() { m.applyResponse(resp, err, fallback) }
		if m.typing {
			m.queued = append(m.queued, apply)
			return
		}
		apply()
	}()
}

// applyResponse records the planner's answer. Caller holds m.mu.
func (m *Machine) applyResponse(resp *models.PlannerResponse, err error, fallback Step) {
	if err != nil {
		m.logger.Warn("planner request failed", zap.Error(err))
		m.store.AppendMessage(models.RoleAssistant, plannerFailedMessage)
		m.step = fallback
		return
	}
	m.store.AppendMessage(models.RoleAssistant, resp.Message)
	if resp.Itinerary != nil {
		m.store.SetItinerary(resp.Itinerary)
	}
	m.suggestions = resp.Suggestions
	m.step = StepComplete
}

// drain processes inputs queued during a typing delay. Caller holds m.mu.
func (m *Machine) drain() {
	for !m.typing && len(m.queued) > 0 {
		next := m.queued[0]
		m.queued = m.queued[1:]
		next()
	}
}
