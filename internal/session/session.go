// Package session owns the live editing session: the form state, the current
// projection, durable persistence, and the debounced logo auto-population.
// All mutation flows through Dispatch, preserving the single-writer semantics
// of the editor event loop.
package session

import (
	"sync"
	"time"

	"github.com/agencyforge/roi-proposal/internal/logo"
	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/state"
	"github.com/agencyforge/roi-proposal/internal/store"
	"go.uber.org/zap"
)

// Session is the single owner of the mutable form state. HTTP handlers, CLI
// actions, and the debounce timer all funnel through its mutex.
type Session struct {
	mu sync.Mutex

	formState state.FormState
	proj      *projection.Projection

	store     *store.Store
	policy    logo.Policy
	debouncer *logo.Debouncer
	logger    *zap.Logger
}

// New loads the persisted snapshot, performs the eager startup calculation
// against whatever was loaded, and returns the session.
func New(st *store.Store, policy logo.Policy, quiet time.Duration, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		store:     st,
		policy:    policy,
		debouncer: logo.NewDebouncer(quiet),
		logger:    logger,
	}
	s.formState = st.Load()

	p := projection.Compute(projection.MetricsFromState(s.formState))
	s.proj = &p

	return s
}

// State returns a copy of the current form state.
func (s *Session) State() state.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formState.Clone()
}

// Projection returns a copy of the current projection, or nil when no
// projection has been computed since the last reset.
func (s *Session) Projection() *projection.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proj == nil {
		return nil
	}
	p := *s.proj
	return &p
}

// Dispatch applies one editor action, persists the whole state best-effort,
// and re-arms the logo debounce when the website field changed. Reset also
// clears the computed projection back to the uncomputed state.
func (s *Session) Dispatch(action state.Action) {
	s.mu.Lock()
	state.Apply(&s.formState, action)
	if _, ok := action.(state.Reset); ok {
		s.proj = nil
	}
	s.save()
	s.mu.Unlock()

	if set, ok := action.(state.SetField); ok && set.Field == state.FieldClientWebsite {
		s.debouncer.Trigger(s.resolveLogo)
	}
}

// Calculate recomputes the projection from the current state and returns it.
// The projection is only ever refreshed here and at startup, never on
// individual keystrokes.
func (s *Session) Calculate() projection.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := projection.Compute(projection.MetricsFromState(s.formState))
	s.proj = &p
	return p
}

// Close cancels any pending debounced lookup.
func (s *Session) Close() {
	s.debouncer.Cancel()
}

// resolveLogo runs after the quiet period. The policy decides whether a
// lookup applies; a manual logo value is never overwritten and an invalid
// domain aborts silently.
func (s *Session) resolveLogo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	url, ok := s.policy.Resolve(s.formState.ClientWebsite, s.formState.ClientLogoURL)
	if !ok {
		return
	}

	s.formState.ClientLogoURL = url
	s.save()
	s.logger.Debug("auto-populated client logo",
		zap.String("op", "session.resolveLogo"),
		zap.String("url", url),
	)
}

// save persists the current state. Failures are already logged by the store;
// the in-memory state stays authoritative either way.
func (s *Session) save() {
	_ = s.store.Save(s.formState)
}
