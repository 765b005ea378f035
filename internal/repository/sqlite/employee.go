package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/staffly/ems-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	store *SnapshotStore
}

func NewEmployeeRepository(store *SnapshotStore) employee.Repository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Load(ctx context.Context) ([]employee.Employee, bool, error) {
	raw, present, err := r.store.Get(ctx, keyEmployees)
	if err != nil {
		return nil, false, fmt.Errorf("load employees snapshot: %w", err)
	}
	if !present {
		return nil, false, nil
	}

	var employees []employee.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, false, fmt.Errorf("decode employees snapshot: %w", err)
	}
	return employees, true, nil
}

func (r *EmployeeRepository) Save(ctx context.Context, employees []employee.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode employees snapshot: %w", err)
	}
	if err := r.store.Put(ctx, keyEmployees, raw); err != nil {
		return fmt.Errorf("save employees snapshot: %w", err)
	}
	return nil
}
