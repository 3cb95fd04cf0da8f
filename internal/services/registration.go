package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventboard/internal/domain"
)

type stateKey struct {
	eventID  string
	identity string
}

type registrationCoordinator struct {
	dir      domain.EventDirectory
	identity domain.IdentityStore
	events   domain.EventUpdater
	logger   *slog.Logger

	mu     sync.Mutex
	states map[stateKey]domain.RegistrationState
}

// NewRegistrationCoordinator returns a coordinator registering through dir for the
// identity held by identity. Registration flags are written through events.
func NewRegistrationCoordinator(
	dir domain.EventDirectory,
	identity domain.IdentityStore,
	events domain.EventUpdater,
	logger *slog.Logger,
) domain.RegistrationCoordinator {
	return &registrationCoordinator{
		dir:      dir,
		identity: identity,
		events:   events,
		logger:   logger,
		states:   make(map[stateKey]domain.RegistrationState),
	}
}

func (c *registrationCoordinator) Register(ctx context.Context, eventID string) (domain.RegistrationState, error) {
	if eventID == "" {
		return domain.RegistrationState{}, fmt.Errorf("event id is required: %w", domain.ErrValidation)
	}
	// Read the identity at the point of use, not when the action was scheduled.
	identity := c.identity.Get()
	held := c.heldEvent(eventID)

	c.mu.Lock()
	if identity == "" {
		st := domain.RegistrationState{EventID: eventID, Phase: domain.PhaseAwaitingIdentity}
		c.states[stateKey{eventID: eventID}] = st
		c.mu.Unlock()
		return st, nil
	}
	key := stateKey{eventID: eventID, identity: identity}
	if st, ok := c.states[key]; ok && !st.CanRegister() {
		// At most one register call per event is in flight; a registered pair stays registered.
		c.mu.Unlock()
		return c.withEvent(st), nil
	}
	if held != nil && held.IsRegistered() {
		// The directory already reports the identity as registered.
		delete(c.states, stateKey{eventID: eventID})
		st := domain.RegistrationState{EventID: eventID, Identity: identity, Phase: domain.PhaseRegistered, Event: held}
		c.states[key] = st
		c.mu.Unlock()
		return st, nil
	}
	delete(c.states, stateKey{eventID: eventID})
	c.states[key] = domain.RegistrationState{EventID: eventID, Identity: identity, Phase: domain.PhaseRegistering}
	c.mu.Unlock()

	err := c.dir.Register(ctx, identity, eventID)
	if err != nil && !errors.Is(err, domain.ErrAlreadyRegistered) {
		c.logger.Warn("registration failed", "event_id", eventID, "err", err)
		st := domain.RegistrationState{
			EventID:  eventID,
			Identity: identity,
			Phase:    domain.PhaseFailed,
			Err:      err,
			Message:  domain.DisplayMessage(err),
		}
		c.store(key, st)
		return c.withEvent(st), err
	}
	if err != nil {
		c.logger.Info("event already registered, treating as registered", "event_id", eventID)
	}

	c.markRegistered(eventID)
	confirmed := c.confirm(ctx, eventID, identity)

	st := domain.RegistrationState{
		EventID:  eventID,
		Identity: identity,
		Phase:    domain.PhaseRegistered,
		Event:    confirmed,
	}
	c.store(key, st)
	return c.withEvent(st), nil
}

func (c *registrationCoordinator) SubmitIdentity(ctx context.Context, eventID, identity string) (domain.RegistrationState, error) {
	if identity == "" {
		return c.State(eventID), fmt.Errorf("identity is required: %w", domain.ErrValidation)
	}
	c.mu.Lock()
	pending := stateKey{eventID: eventID}
	st, ok := c.states[pending]
	if !ok || st.Phase != domain.PhaseAwaitingIdentity {
		c.mu.Unlock()
		return c.State(eventID), fmt.Errorf("submit identity for event %s: %w", eventID, domain.ErrInvalidTransition)
	}
	delete(c.states, pending)
	c.mu.Unlock()

	// The just-in-time identity becomes the session identity.
	c.identity.Set(identity)
	return c.Register(ctx, eventID)
}

func (c *registrationCoordinator) Cancel(eventID string) domain.RegistrationState {
	c.mu.Lock()
	pending := stateKey{eventID: eventID}
	if st, ok := c.states[pending]; ok && st.Phase == domain.PhaseAwaitingIdentity {
		delete(c.states, pending)
	}
	c.mu.Unlock()
	return c.State(eventID)
}

func (c *registrationCoordinator) State(eventID string) domain.RegistrationState {
	identity := c.identity.Get()
	c.mu.Lock()
	st, ok := c.states[stateKey{eventID: eventID, identity: identity}]
	c.mu.Unlock()
	if ok {
		return c.withEvent(st)
	}

	st = domain.RegistrationState{EventID: eventID, Identity: identity, Phase: domain.PhaseUnregistered}
	st = c.withEvent(st)
	if identity != "" && st.Event != nil && st.Event.IsRegistered() {
		st.Phase = domain.PhaseRegistered
	}
	return st
}

// markRegistered is the optimistic write: the flag flips as soon as the server
// accepted the registration or reported it as already present.
func (c *registrationCoordinator) markRegistered(eventID string) {
	c.events.UpdateEvent(eventID, func(ev *domain.Event) {
		registered := true
		ev.RegistrationStatus = &registered
	})
}

// confirm is the best-effort reconciliation read. Its failure is logged and
// never rolls back the optimistic flag.
func (c *registrationCoordinator) confirm(ctx context.Context, eventID, identity string) *domain.Event {
	fresh, err := c.dir.GetEvent(ctx, eventID, identity)
	if err != nil {
		c.logger.Warn("registration confirmation read failed", "event_id", eventID, "err", err)
		return nil
	}
	registered := true
	fresh.RegistrationStatus = &registered
	c.events.UpdateEvent(eventID, func(ev *domain.Event) {
		ev.NumberOfRegistrants = fresh.Clone().NumberOfRegistrants
		ev.Capacity = fresh.Capacity
	})
	return fresh
}

func (c *registrationCoordinator) store(key stateKey, st domain.RegistrationState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[key] = st
}

// withEvent attaches the catalog's copy of the event when one is held.
func (c *registrationCoordinator) withEvent(st domain.RegistrationState) domain.RegistrationState {
	if held := c.heldEvent(st.EventID); held != nil {
		st.Event = held
	} else if st.Event != nil {
		st.Event = st.Event.Clone()
	}
	return st
}

// heldEvent returns a copy of the catalog's record of eventID, or nil.
func (c *registrationCoordinator) heldEvent(eventID string) *domain.Event {
	var held *domain.Event
	c.events.UpdateEvent(eventID, func(ev *domain.Event) {
		if held == nil {
			held = ev.Clone()
		}
	})
	return held
}
