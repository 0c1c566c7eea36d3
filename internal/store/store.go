// Package store provides user persistence backends: an in-memory map
// with simulated latency for demos and tests, and a SQLite-backed
// store for durable local data.
package store

import (
	"context"

	"github.com/Mking11/reque3sted/internal/types"
)

// UserStore abstracts user persistence. All operations are
// context-aware and may be slow; callers must not assume they return
// promptly.
//
// Lookup semantics: GetByID returns (nil, nil) when no record exists.
// Absence is not an error. Update on a missing ID is a silent no-op.
type UserStore interface {
	Insert(ctx context.Context, u types.User) error
	Update(ctx context.Context, u types.User) error
	Delete(ctx context.Context, u types.User) error
	GetByID(ctx context.Context, id int64) (*types.User, error)
}
