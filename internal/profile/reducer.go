package profile

// Apply is the single entry point of the state machine: it maps the
// current state and an incoming event to the next state plus an
// optional effect to execute. Apply is pure; callers own serialization
// of calls and execution of effects.
//
// Events that do not apply to the current state (editing or saving
// with no loaded user) return the state unchanged with no effect.
func Apply(state UIState, ev Event) (UIState, Effect) {
	switch ev := ev.(type) {
	case LoadUser:
		// A new load clears any prior error but keeps the current
		// user visible until the fetch resolves.
		state.IsLoading = true
		state.Err = ""
		return state, FetchEffect{ID: ev.UserID}

	case UserFetched:
		// ev.User is nil on a lookup miss; that is not an error.
		state.IsLoading = false
		state.User = ev.User
		return state, nil

	case FetchFailed:
		state.IsLoading = false
		state.Err = ErrLoadFailed
		return state, nil

	case UpdateUserName:
		if state.User == nil {
			return state, nil
		}
		edited := *state.User
		edited.Name = ev.Name
		state.User = &edited
		state.IsSaved = false
		return state, nil

	case SaveUser:
		if state.User == nil {
			return state, nil
		}
		state.IsLoading = true
		state.Err = ""
		return state, SaveEffect{User: *state.User}

	case SaveSucceeded:
		state.IsLoading = false
		state.IsSaved = true
		return state, nil

	case SaveFailed:
		state.IsLoading = false
		state.Err = ErrSaveFailed
		return state, nil
	}

	return state, nil
}
