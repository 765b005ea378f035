package dashboard

// DashboardResponse is the combined payload for the overview dashboard:
// headline cards plus the two distribution charts.
type DashboardResponse struct {
	TotalEmployees  int64                 `json:"total_employees"`
	ActiveEmployees int64                 `json:"active_employees"`
	Departments     int64                 `json:"departments"`
	AverageSalary   int64                 `json:"average_salary"`
	Levels          LevelCountsResponse   `json:"experience_levels"`
	Distribution    []DepartmentCountItem `json:"department_distribution"`
}

// LevelCountsResponse counts employees per experience level. Every level is
// present, zero included.
type LevelCountsResponse struct {
	Junior int64 `json:"junior"`
	Mid    int64 `json:"mid"`
	Senior int64 `json:"senior"`
	Lead   int64 `json:"lead"`
}

// DepartmentCountItem is one bar of the department distribution chart. It
// iterates the fixed catalog, so freeform departments outside the catalog do
// not surface here.
type DepartmentCountItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
