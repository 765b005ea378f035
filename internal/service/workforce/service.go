package workforce

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/staffly/ems-backend-go/internal/domain/department"
	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/fixtures"
)

// WorkforceServiceImpl holds the employee collection in memory and mirrors it
// to durable storage after every mutation. The durable copy is authoritative
// at startup; in-memory state is authoritative afterwards. The mutex stands in
// for the single-threaded event loop of the original UI: mutations never
// interleave.
type WorkforceServiceImpl struct {
	mu          sync.RWMutex
	repo        employee.Repository
	employees   []employee.Employee
	departments []department.Department
	ready       bool
}

func NewWorkforceService(repo employee.Repository) employee.Service {
	return &WorkforceServiceImpl{
		repo:        repo,
		departments: fixtures.SampleDepartments(),
	}
}

// Init implements employee.Service. On first run the sample set is written to
// storage before the store reports ready.
func (s *WorkforceServiceImpl) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, present, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !present {
		employees = fixtures.SampleEmployees()
		if err := s.repo.Save(ctx, employees); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	s.employees = employees
	s.ready = true
	return nil
}

func (s *WorkforceServiceImpl) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *WorkforceServiceImpl) checkReady() error {
	if !s.ready {
		return employee.ErrStoreNotReady
	}
	return nil
}

// Add implements employee.Service. The store assigns a new time-ordered
// unique id; no further validation happens here.
func (s *WorkforceServiceImpl) Add(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReady(); err != nil {
		return employee.Employee{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
	}

	newEmployee := req.ToEmployee()
	newEmployee.ID = id.String()

	s.employees = append(s.employees, newEmployee)
	if err := s.repo.Save(ctx, s.employees); err != nil {
		// In-memory state has already changed; the snapshot write is not
		// rolled back, matching the store's persist-after-mutate contract.
		return newEmployee, err
	}
	return newEmployee, nil
}

// Update implements employee.Service. Unknown ids are a silent no-op and do
// not touch storage.
func (s *WorkforceServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReady(); err != nil {
		return err
	}

	for i := range s.employees {
		if s.employees[i].ID == id {
			req.Apply(&s.employees[i])
			return s.repo.Save(ctx, s.employees)
		}
	}
	return nil
}

// Delete implements employee.Service. Unknown ids are a silent no-op and do
// not touch storage.
func (s *WorkforceServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReady(); err != nil {
		return err
	}

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return s.repo.Save(ctx, s.employees)
		}
	}
	return nil
}

func (s *WorkforceServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkReady(); err != nil {
		return employee.Employee{}, err
	}

	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.Service: free-text search over name, position and
// email (case-insensitive), combined with exact department and level filters.
// Collection order is preserved.
func (s *WorkforceServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkReady(); err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	result := make([]employee.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(emp.Position), search) &&
			!strings.Contains(strings.ToLower(emp.Email), search) {
			continue
		}
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		if filter.Level != "" && string(emp.ExperienceLevel) != filter.Level {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (s *WorkforceServiceImpl) ByExperienceLevel(ctx context.Context, level employee.ExperienceLevel) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkReady(); err != nil {
		return nil, err
	}

	result := make([]employee.Employee, 0)
	for _, emp := range s.employees {
		if emp.ExperienceLevel == level {
			result = append(result, emp)
		}
	}
	return result, nil
}

// ByDepartment matches the freeform department string exactly. Departments
// outside the fixed catalog are still queryable here.
func (s *WorkforceServiceImpl) ByDepartment(ctx context.Context, name string) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkReady(); err != nil {
		return nil, err
	}

	result := make([]employee.Employee, 0)
	for _, emp := range s.employees {
		if emp.Department == name {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (s *WorkforceServiceImpl) Snapshot(ctx context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkReady(); err != nil {
		return nil, err
	}

	snapshot := make([]employee.Employee, len(s.employees))
	copy(snapshot, s.employees)
	return snapshot, nil
}

func (s *WorkforceServiceImpl) Departments() []department.Department {
	return s.departments
}
