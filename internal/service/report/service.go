package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	workforce employee.Service
}

func NewReportService(workforce employee.Service) report.Service {
	return &ReportServiceImpl{workforce: workforce}
}

// GetReport derives the analytics breakdown from the current workforce
// snapshot. The per-department section iterates the fixed catalog only, so a
// freeform department outside it never appears there even though its
// employees remain queryable by exact name.
func (s *ReportServiceImpl) GetReport(ctx context.Context) (*report.ReportResponse, error) {
	snapshot, err := s.workforce.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var active int64
	var yearsTotal int64
	for _, emp := range snapshot {
		if emp.Status == employee.StatusActive {
			active++
		}
		yearsTotal += int64(emp.YearsOfExperience)
	}

	var avgExperience int64
	if len(snapshot) > 0 {
		avgExperience = int64(float64(yearsTotal)/float64(len(snapshot)) + 0.5)
	}

	summary := report.SummaryResponse{
		TotalEmployees:    int64(len(snapshot)),
		ActiveEmployees:   active,
		AverageSalary:     averageSalary(snapshot),
		AverageExperience: avgExperience,
	}

	departments := s.workforce.Departments()
	departmentStats := make([]report.DepartmentStatsItem, 0, len(departments))
	for _, dept := range departments {
		var members []employee.Employee
		for _, emp := range snapshot {
			if emp.Department == dept.Name {
				members = append(members, emp)
			}
		}
		departmentStats = append(departmentStats, report.DepartmentStatsItem{
			Name:          dept.Name,
			Employees:     int64(len(members)),
			AverageSalary: averageSalary(members),
		})
	}

	distribution := make([]report.LevelDistributionRow, 0, len(employee.Levels))
	salaryByLevel := make([]report.LevelSalaryRow, 0, len(employee.Levels))
	for _, level := range employee.Levels {
		var members []employee.Employee
		for _, emp := range snapshot {
			if emp.ExperienceLevel == level {
				members = append(members, emp)
			}
		}
		distribution = append(distribution, report.LevelDistributionRow{
			Level: string(level),
			Count: int64(len(members)),
		})
		salaryByLevel = append(salaryByLevel, report.LevelSalaryRow{
			Level:         string(level),
			AverageSalary: averageSalary(members),
		})
	}

	return &report.ReportResponse{
		Summary:       summary,
		Departments:   departmentStats,
		Experience:    distribution,
		SalaryByLevel: salaryByLevel,
	}, nil
}

var exportHeader = []string{
	"ID", "Name", "Email", "Position", "Department",
	"Experience Level", "Years of Experience", "Salary",
	"Join Date", "Skills", "Status",
}

// ExportEmployees renders the current collection as a one-sheet Excel
// workbook, returned as an in-memory buffer for the handler to stream.
func (s *ReportServiceImpl) ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error) {
	snapshot, err := s.workforce.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for row, emp := range snapshot {
		values := []interface{}{
			emp.ID,
			emp.Name,
			emp.Email,
			emp.Position,
			emp.Department,
			string(emp.ExperienceLevel),
			emp.YearsOfExperience,
			emp.Salary.InexactFloat64(),
			emp.JoinDate,
			strings.Join(emp.Skills, ", "),
			string(emp.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("employee-report-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

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
