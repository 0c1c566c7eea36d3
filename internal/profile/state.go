// Package profile implements the state machine driving the profile
// screen: a pure reducer mapping (state, event) to (state, effect),
// and a Session that owns one state instance and executes effects
// against a user store.
package profile

import "github.com/Mking11/reque3sted/internal/types"

// User-facing failure text. Store errors are absorbed at the
// effect-completion boundary and surfaced only as these strings.
const (
	ErrLoadFailed = "Failed to load user"
	ErrSaveFailed = "Failed to save user"
)

// UIState is the complete rendered state of the profile screen at a
// point in time.
//
// Invariants: a new load clears any prior error before the fetch
// resolves; any edit to the user clears IsSaved.
type UIState struct {
	IsLoading bool
	User      *types.User
	Err       string
	IsSaved   bool
}

// Initial returns the all-default state a screen session starts from.
func Initial() UIState {
	return UIState{}
}
