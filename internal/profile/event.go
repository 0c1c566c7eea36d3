package profile

import "github.com/Mking11/reque3sted/internal/types"

// Event is a tagged variant fed into the reducer. User gestures
// produce LoadUser, UpdateUserName, and SaveUser; effect completions
// re-enter as UserFetched, FetchFailed, SaveSucceeded, and SaveFailed.
type Event interface {
	isEvent()
}

// LoadUser requests a fetch of the user with the given ID.
type LoadUser struct {
	UserID int64
}

// UpdateUserName replaces the loaded user's name. No-op when no user
// is loaded.
type UpdateUserName struct {
	Name string
}

// SaveUser persists the currently loaded user. No-op when no user is
// loaded.
type SaveUser struct{}

// UserFetched reports a completed fetch. User is nil when the record
// was absent; absence is not a failure.
type UserFetched struct {
	User *types.User
}

// FetchFailed reports that the fetch operation itself failed.
type FetchFailed struct {
	Err error
}

// SaveSucceeded reports a completed save.
type SaveSucceeded struct{}

// SaveFailed reports that the save operation failed.
type SaveFailed struct {
	Err error
}

func (LoadUser) isEvent()       {}
func (UpdateUserName) isEvent() {}
func (SaveUser) isEvent()       {}
func (UserFetched) isEvent()    {}
func (FetchFailed) isEvent()    {}
func (SaveSucceeded) isEvent()  {}
func (SaveFailed) isEvent()     {}
