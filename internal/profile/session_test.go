package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Mking11/reque3sted/internal/store"
	"github.com/Mking11/reque3sted/internal/types"
)

// brokenStore fails every operation; used to exercise the failure
// boundary.
type brokenStore struct{}

func (brokenStore) Insert(ctx context.Context, u types.User) error { return errors.New("insert down") }
func (brokenStore) Update(ctx context.Context, u types.User) error { return errors.New("update down") }
func (brokenStore) Delete(ctx context.Context, u types.User) error { return errors.New("delete down") }
func (brokenStore) GetByID(ctx context.Context, id int64) (*types.User, error) {
	return nil, errors.New("lookup down")
}

// waitForIdle blocks until the session leaves the loading state or the
// timeout elapses.
func waitForIdle(t *testing.T, s *Session) UIState {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		st := s.State()
		if !st.IsLoading {
			return st
		}
		select {
		case <-s.Changes():
		case <-time.After(10 * time.Millisecond):
		case <-deadline:
			t.Fatal("session never left loading state")
		}
	}
}

func newFastStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore(store.NoLatency())
	require.NoError(t, store.Seed(context.Background(), st))
	return st
}

func TestSession_LoadScenario(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(newFastStore(t))
	defer s.Close()

	require.Equal(t, Initial(), s.State())

	s.Dispatch(LoadUser{UserID: 1})
	st := waitForIdle(t, s)

	require.NotNil(t, st.User)
	assert.Equal(t, types.User{ID: 1, Name: "Michael Mekonnen", Age: 29, Gender: "Male"}, *st.User)
	assert.Empty(t, st.Err)
	assert.False(t, st.IsSaved)
}

func TestSession_EditThenSaveScenario(t *testing.T) {
	defer goleak.VerifyNone(t)

	mem := newFastStore(t)
	s := NewSession(mem)
	defer s.Close()

	s.Dispatch(LoadUser{UserID: 1})
	waitForIdle(t, s)

	s.Dispatch(UpdateUserName{Name: "Alex"})
	assert.False(t, s.State().IsSaved)

	s.Dispatch(SaveUser{})
	st := waitForIdle(t, s)

	assert.True(t, st.IsSaved)
	assert.Empty(t, st.Err)
	require.NotNil(t, st.User)
	assert.Equal(t, "Alex", st.User.Name)

	// The edit reached the store.
	persisted, err := mem.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Alex", persisted.Name)
}

func TestSession_LoadMiss_NoError(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(newFastStore(t))
	defer s.Close()

	s.Dispatch(LoadUser{UserID: 404})
	st := waitForIdle(t, s)

	assert.Nil(t, st.User)
	assert.Empty(t, st.Err)
}

func TestSession_LoadFailure_SurfacesText(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(brokenStore{})
	defer s.Close()

	s.Dispatch(LoadUser{UserID: 1})
	st := waitForIdle(t, s)

	assert.Equal(t, ErrLoadFailed, st.Err)
	assert.Nil(t, st.User)
}

func TestSession_SaveFailure_SurfacesText(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(newFastStore(t))
	defer s.Close()

	s.Dispatch(LoadUser{UserID: 1})
	waitForIdle(t, s)

	// Swap in a failing store mid-session by building a fresh session;
	// the save path is what matters.
	broken := NewSession(brokenStore{})
	defer broken.Close()
	broken.Dispatch(UserFetched{User: &types.User{ID: 1, Name: "Michael Mekonnen"}})
	broken.Dispatch(SaveUser{})
	st := waitForIdle(t, broken)

	assert.Equal(t, ErrSaveFailed, st.Err)
	assert.False(t, st.IsSaved)
}

func TestSession_SaveWithoutUser_NoEffect(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(brokenStore{})
	defer s.Close()

	s.Dispatch(SaveUser{})

	// No effect was issued, so the broken store is never touched and
	// the state stays at its defaults.
	assert.Equal(t, Initial(), s.State())
}

func TestSession_RapidLoads_LastCompletionWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(newFastStore(t))
	defer s.Close()

	// Two loads in flight; no cancellation is performed, so whichever
	// completes last determines the final user.
	s.Dispatch(LoadUser{UserID: 1})
	s.Dispatch(LoadUser{UserID: 2})

	st := waitForIdle(t, s)
	require.NotNil(t, st.User)
	assert.Contains(t, []int64{1, 2}, st.User.ID)
}

func TestExecuteEffect_ConvertsOutcomesToEvents(t *testing.T) {
	ctx := context.Background()

	ev := ExecuteEffect(ctx, brokenStore{}, FetchEffect{ID: 1})
	assert.IsType(t, FetchFailed{}, ev)

	ev = ExecuteEffect(ctx, brokenStore{}, SaveEffect{User: types.User{ID: 1}})
	assert.IsType(t, SaveFailed{}, ev)

	fast := newFastStore(t)
	ev = ExecuteEffect(ctx, fast, FetchEffect{ID: 1})
	require.IsType(t, UserFetched{}, ev)
	assert.Equal(t, "Michael Mekonnen", ev.(UserFetched).User.Name)

	ev = ExecuteEffect(ctx, fast, SaveEffect{User: types.User{ID: 1, Name: "Alex"}})
	assert.IsType(t, SaveSucceeded{}, ev)
}

func TestSession_Close_Idempotent(t *testing.T) {
	s := NewSession(newFastStore(t))
	s.Close()
	s.Close()
	s.Close()
}

func TestSession_Close_StopsInFlightEffects(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Long latency so the fetch is still in flight when we close.
	slow := store.NewMemoryStore(store.Latency{Get: 10 * time.Second})
	s := NewSession(slow)

	s.Dispatch(LoadUser{UserID: 1})

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()

	select {
	case <-done:
		// Close returned promptly because cancellation aborted the
		// simulated latency.
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not cancel the in-flight effect")
	}

	// The aborted fetch surfaces as a load failure.
	assert.Equal(t, ErrLoadFailed, s.State().Err)
}
