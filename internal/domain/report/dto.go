package report

// ReportResponse is the analytics payload: headline summary plus the
// per-department and per-level breakdowns.
type ReportResponse struct {
	Summary       SummaryResponse        `json:"summary"`
	Departments   []DepartmentStatsItem  `json:"departments"`
	Experience    []LevelDistributionRow `json:"experience_distribution"`
	SalaryByLevel []LevelSalaryRow       `json:"salary_by_level"`
}

type SummaryResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	AverageSalary     int64 `json:"average_salary"`
	AverageExperience int64 `json:"average_experience"` // in years
}

// DepartmentStatsItem covers one catalog department. The catalog drives the
// iteration, so employees with freeform departments outside it are counted
// nowhere in this breakdown.
type DepartmentStatsItem struct {
	Name          string `json:"name"`
	Employees     int64  `json:"employees"`
	AverageSalary int64  `json:"average_salary"`
}

type LevelDistributionRow struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

type LevelSalaryRow struct {
	Level         string `json:"level"`
	AverageSalary int64  `json:"average_salary"`
}
