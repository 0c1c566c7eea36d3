package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mking11/reque3sted/internal/logging"
	"github.com/Mking11/reque3sted/internal/store"
)

// effectTimeout bounds a single store operation issued by an effect.
const effectTimeout = 30 * time.Second

// Session owns one UIState for the lifetime of a screen session. It is
// the single writer: Dispatch serializes reducer application under a
// mutex, and effect completions re-enter through the same path so they
// always apply against the then-current state, never a stale snapshot.
//
// Superseded effects are not cancelled; when two fetches race, the
// last to complete wins.
type Session struct {
	id    string
	store store.UserStore

	mu    sync.Mutex
	state UIState

	changes chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// NewSession creates a session over the given store with an
// all-default state.
func NewSession(st store.UserStore) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:      uuid.NewString(),
		store:   st,
		state:   Initial(),
		changes: make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	logging.Session("session %s started", s.id)
	return s
}

// ID returns the session's correlation ID.
func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the current UI state.
func (s *Session) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Changes signals after every state transition. The channel is
// buffered with capacity one and notified without blocking, so a slow
// consumer coalesces bursts into a single wakeup.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Dispatch applies ev to the current state and launches any resulting
// effect in the background. Safe for concurrent use; events are
// processed one at a time.
func (s *Session) Dispatch(ev Event) {
	s.mu.Lock()
	next, eff := Apply(s.state, ev)
	s.state = next
	s.mu.Unlock()

	logging.SessionDebug("session %s: event %T applied (loading=%v err=%q saved=%v)",
		s.id, ev, next.IsLoading, next.Err, next.IsSaved)
	s.notify()

	if eff != nil {
		s.wg.Add(1)
		go s.runEffect(eff)
	}
}

// runEffect executes one store operation and feeds the completion
// event back through Dispatch. Store errors stop here; they are
// converted to completion events and never propagate further.
func (s *Session) runEffect(eff Effect) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.ctx, effectTimeout)
	defer cancel()

	if ev := ExecuteEffect(ctx, s.store, eff); ev != nil {
		s.Dispatch(ev)
	}
}

// ExecuteEffect runs the store operation described by eff and returns
// the completion event to feed back into the reducer. Store errors are
// absorbed here and surface only as FetchFailed or SaveFailed. Shared
// by Session and the TUI command layer so the two stay in lockstep.
func ExecuteEffect(ctx context.Context, st store.UserStore, eff Effect) Event {
	switch eff := eff.(type) {
	case FetchEffect:
		u, err := st.GetByID(ctx, eff.ID)
		if err != nil {
			logging.Session("fetch of user %d failed: %v", eff.ID, err)
			return FetchFailed{Err: err}
		}
		return UserFetched{User: u}

	case SaveEffect:
		if err := st.Update(ctx, eff.User); err != nil {
			logging.Session("save of user %d failed: %v", eff.User.ID, err)
			return SaveFailed{Err: err}
		}
		return SaveSucceeded{}
	}
	return nil
}

func (s *Session) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Close cancels in-flight effects and waits for their goroutines to
// finish. Idempotent. The UI state itself is discarded with the
// session; nothing is persisted.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.wg.Wait()
		logging.Session("session %s closed", s.id)
	})
}
