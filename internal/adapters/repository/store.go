// Package repository defines the activity store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to activity rosters.
type Store interface {
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) model.Activities

	// Get returns one activity. Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the roster of name and returns the updated activity.
	// Returns ErrNotFound, ErrAlreadySignedUp or, when capacity is enforced, ErrActivityFull.
	Signup(ctx context.Context, name, email string) (model.Activity, error)

	// Unregister removes email from the roster of name and returns the updated activity.
	// Returns ErrNotFound or ErrNotSignedUp.
	Unregister(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities.
	Count(ctx context.Context) int
}
