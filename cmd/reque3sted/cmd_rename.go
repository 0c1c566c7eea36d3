package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mking11/reque3sted/internal/profile"
	"github.com/Mking11/reque3sted/internal/store"
	"github.com/Mking11/reque3sted/internal/types"
)

// renameCmd drives the full load-edit-save lifecycle through a profile
// session, the same state machine the interactive screen runs, without
// a terminal.
var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a user through the profile state machine",
	Long: `Loads the user, applies the name edit, and saves it back, going
through the same load/edit/save lifecycle as the interactive screen.
Simulated latency applies, so this waits like the screen does.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		st, closer, err := openConfiguredStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()

		u, err := renameUser(ctx, st, id, args[1])
		if err != nil {
			return err
		}
		logger.Info("user renamed", zap.Int64("id", id), zap.String("name", args[1]))
		printUser(*u)
		return nil
	},
}

// renameUser runs load, edit, save against a fresh session, waiting on
// the change channel between the asynchronous phases.
func renameUser(ctx context.Context, st store.UserStore, id int64, name string) (*types.User, error) {
	s := profile.NewSession(st)
	defer s.Close()

	s.Dispatch(profile.LoadUser{UserID: id})
	state, err := awaitIdle(ctx, s)
	if err != nil {
		return nil, err
	}
	if state.Err != "" {
		return nil, fmt.Errorf("%s", state.Err)
	}
	if state.User == nil {
		return nil, fmt.Errorf("no user with id %d", id)
	}

	s.Dispatch(profile.UpdateUserName{Name: name})
	s.Dispatch(profile.SaveUser{})
	state, err = awaitIdle(ctx, s)
	if err != nil {
		return nil, err
	}
	if state.Err != "" {
		return nil, fmt.Errorf("%s", state.Err)
	}
	return state.User, nil
}

// awaitIdle blocks until the session finishes its in-flight work or
// ctx expires.
func awaitIdle(ctx context.Context, s *profile.Session) (profile.UIState, error) {
	for {
		state := s.State()
		if !state.IsLoading {
			return state, nil
		}
		select {
		case <-s.Changes():
		case <-ctx.Done():
			return state, ctx.Err()
		}
	}
}
