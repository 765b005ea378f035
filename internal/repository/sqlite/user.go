package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/staffly/ems-backend-go/internal/domain/user"
)

type UserRepository struct {
	store *SnapshotStore
}

func NewUserRepository(store *SnapshotStore) user.Repository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Load(ctx context.Context) ([]user.User, bool, error) {
	raw, present, err := r.store.Get(ctx, keyUsers)
	if err != nil {
		return nil, false, fmt.Errorf("load users snapshot: %w", err)
	}
	if !present {
		return nil, false, nil
	}

	var users []user.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false, fmt.Errorf("decode users snapshot: %w", err)
	}
	return users, true, nil
}

func (r *UserRepository) Save(ctx context.Context, users []user.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users snapshot: %w", err)
	}
	if err := r.store.Put(ctx, keyUsers, raw); err != nil {
		return fmt.Errorf("save users snapshot: %w", err)
	}
	return nil
}
