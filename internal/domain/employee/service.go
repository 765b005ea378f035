package employee

import (
	"context"

	"github.com/staffly/ems-backend-go/internal/domain/department"
)

// Service is the workforce store: it owns the employee collection and the
// fixed department catalog, and keeps durable storage synchronized with every
// mutation.
type Service interface {
	// Init loads the persisted collection, seeding the sample set on first run.
	Init(ctx context.Context) error
	// Ready reports whether the initial load from durable storage completed.
	Ready() bool

	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	Add(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	// Update merges the partial fields over the matching record. Unknown ids
	// are a silent no-op.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// Delete removes the matching record. Unknown ids are a silent no-op.
	Delete(ctx context.Context, id string) error

	ByExperienceLevel(ctx context.Context, level ExperienceLevel) ([]Employee, error)
	ByDepartment(ctx context.Context, name string) ([]Employee, error)

	// Snapshot returns the full collection in insertion order.
	Snapshot(ctx context.Context) ([]Employee, error)
	// Departments returns the fixed catalog. It is never persisted or mutated.
	Departments() []department.Department
}
