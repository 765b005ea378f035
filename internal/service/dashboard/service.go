package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/staffly/ems-backend-go/internal/domain/dashboard"
	"github.com/staffly/ems-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	workforce employee.Service
}

func NewDashboardService(workforce employee.Service) dashboard.Service {
	return &DashboardServiceImpl{workforce: workforce}
}

// GetDashboard derives every card and chart from one snapshot of the
// workforce store, computing the three sections concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	snapshot, err := s.workforce.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var (
		resp         dashboard.DashboardResponse
		levels       dashboard.LevelCountsResponse
		distribution []dashboard.DepartmentCountItem
	)

	g, _ := errgroup.WithContext(ctx)

	// 1. Headline cards: totals, active count, average salary.
	g.Go(func() error {
		var active int64
		for _, emp := range snapshot {
			if emp.Status == employee.StatusActive {
				active++
			}
		}
		resp.TotalEmployees = int64(len(snapshot))
		resp.ActiveEmployees = active
		resp.Departments = int64(len(s.workforce.Departments()))
		resp.AverageSalary = averageSalary(snapshot)
		return nil
	})

	// 2. Experience level counts, every level present.
	g.Go(func() error {
		for _, emp := range snapshot {
			switch emp.ExperienceLevel {
			case employee.LevelJunior:
				levels.Junior++
			case employee.LevelMid:
				levels.Mid++
			case employee.LevelSenior:
				levels.Senior++
			case employee.LevelLead:
				levels.Lead++
			}
		}
		return nil
	})

	// 3. Department distribution over the fixed catalog.
	g.Go(func() error {
		departments := s.workforce.Departments()
		distribution = make([]dashboard.DepartmentCountItem, 0, len(departments))
		for _, dept := range departments {
			var count int64
			for _, emp := range snapshot {
				if emp.Department == dept.Name {
					count++
				}
			}
			distribution = append(distribution, dashboard.DepartmentCountItem{
				Name:  dept.Name,
				Count: count,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.Levels = levels
	resp.Distribution = distribution
	return &resp, nil
}

// averageSalary rounds to the nearest whole amount; an empty collection
// averages to 0, never NaN.
func averageSalary(employees []employee.Employee) int64 {
	if len(employees) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, emp := range employees {
		sum = sum.Add(emp.Salary)
	}
	return sum.Div(decimal.NewFromInt(int64(len(employees)))).Round(0).IntPart()
}
