package profile

import "github.com/Mking11/reque3sted/internal/types"

// Effect describes an asynchronous store operation requested by a
// transition. A nil Effect means no work to do. Effects are
// descriptions only; the reducer never touches the store itself.
type Effect interface {
	isEffect()
}

// FetchEffect asks the caller to look up a user by ID and feed the
// result back as UserFetched or FetchFailed.
type FetchEffect struct {
	ID int64
}

// SaveEffect asks the caller to persist the given user and feed the
// result back as SaveSucceeded or SaveFailed.
type SaveEffect struct {
	User types.User
}

func (FetchEffect) isEffect() {}
func (SaveEffect) isEffect()  {}
