package store

import (
	"context"
	"fmt"

	"github.com/Mking11/reque3sted/internal/types"
)

// DemoUsers is the fixture data loaded by the `seed` command.
func DemoUsers() []types.User {
	return []types.User{
		{ID: 1, Name: "Michael Mekonnen", Age: 29, Gender: "Male"},
		{ID: 2, Name: "Sara Tesfaye", Age: 24, Gender: "Female"},
		{ID: 3, Name: "Daniel Abebe", Age: 31, Gender: "Male"},
	}
}

// Seed inserts the demo fixtures into the given store, overwriting any
// records that already exist.
func Seed(ctx context.Context, s UserStore) error {
	for _, u := range DemoUsers() {
		if err := s.Insert(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", u.ID, err)
		}
	}
	return nil
}
