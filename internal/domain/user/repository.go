package user

import "context"

// Repository persists the registered-user list as a single wholesale snapshot.
type Repository interface {
	Load(ctx context.Context) (users []User, present bool, err error)
	Save(ctx context.Context, users []User) error
}
