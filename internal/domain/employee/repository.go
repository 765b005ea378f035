package employee

import "context"

// Repository persists the employee collection as a single wholesale snapshot.
// Load reports whether a snapshot record exists at all, so callers can tell
// "never seeded" apart from an empty collection.
type Repository interface {
	Load(ctx context.Context) (employees []Employee, present bool, err error)
	Save(ctx context.Context, employees []Employee) error
}
