package fixtures

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffly/ems-backend-go/internal/domain/department"
	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/domain/user"
)

// DemoPassword is the shared password of the seeded demo accounts.
const DemoPassword = "password"

// SampleDepartments returns the fixed department catalog. It is seeded once
// and never persisted or mutated.
func SampleDepartments() []department.Department {
	return []department.Department{
		{ID: "1", Name: "Engineering", Description: "Software development and technical operations"},
		{ID: "2", Name: "Marketing", Description: "Brand promotion and customer acquisition"},
		{ID: "3", Name: "Sales", Description: "Revenue generation and client relations"},
		{ID: "4", Name: "HR", Description: "Human resources and talent management"},
		{ID: "5", Name: "Finance", Description: "Financial planning and accounting"},
	}
}

// SampleEmployees returns the employee set written to storage on first run.
func SampleEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:                "1",
			Name:              "John Doe",
			Email:             "john.doe@company.com",
			Position:          "Senior Software Engineer",
			Department:        "Engineering",
			ExperienceLevel:   employee.LevelSenior,
			YearsOfExperience: 8,
			Salary:            decimal.NewFromInt(95000),
			JoinDate:          "2020-01-15",
			Skills:            []string{"React", "Node.js", "TypeScript", "AWS"},
			Status:            employee.StatusActive,
		},
		{
			ID:                "2",
			Name:              "Jane Smith",
			Email:             "jane.smith@company.com",
			Position:          "Marketing Manager",
			Department:        "Marketing",
			ExperienceLevel:   employee.LevelMid,
			YearsOfExperience: 5,
			Salary:            decimal.NewFromInt(70000),
			JoinDate:          "2021-03-10",
			Skills:            []string{"Digital Marketing", "SEO", "Content Strategy"},
			Status:            employee.StatusActive,
		},
		{
			ID:                "3",
			Name:              "Mike Johnson",
			Email:             "mike.johnson@company.com",
			Position:          "Junior Developer",
			Department:        "Engineering",
			ExperienceLevel:   employee.LevelJunior,
			YearsOfExperience: 2,
			Salary:            decimal.NewFromInt(55000),
			JoinDate:          "2023-06-01",
			Skills:            []string{"JavaScript", "React", "CSS"},
			Status:            employee.StatusActive,
		},
	}
}

// DemoUsers returns the three demo accounts seeded when no user list exists.
// Passwords are stored as bcrypt hashes, never plaintext.
func DemoUsers() []user.User {
	now := time.Now().UTC()
	return []user.User{
		{
			ID:           "1",
			Email:        "admin@company.com",
			PasswordHash: hashDemoPassword(),
			Name:         "Admin User",
			Role:         user.RoleAdmin,
			CreatedAt:    now,
		},
		{
			ID:           "2",
			Email:        "manager@company.com",
			PasswordHash: hashDemoPassword(),
			Name:         "Manager User",
			Role:         user.RoleManager,
			CreatedAt:    now,
		},
		{
			ID:           "3",
			Email:        "employee@company.com",
			PasswordHash: hashDemoPassword(),
			Name:         "Employee User",
			Role:         user.RoleEmployee,
			CreatedAt:    now,
		},
	}
}

func hashDemoPassword() string {
	// bcrypt only fails on out-of-range cost, which DefaultCost never is.
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	return string(hash)
}
