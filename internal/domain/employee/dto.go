package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffly/ems-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	ExperienceLevel   string          `json:"experience_level"`
	YearsOfExperience int             `json:"years_of_experience"`
	Salary            decimal.Decimal `json:"salary"`
	JoinDate          string          `json:"join_date"`
	Skills            []string        `json:"skills"`
	Status            string          `json:"status"`
	ManagerID         *string         `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if !ExperienceLevel(r.ExperienceLevel).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "experience_level",
			Message: "experience_level must be one of: junior, mid, senior, lead",
		})
	}
	if r.YearsOfExperience < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "years_of_experience",
			Message: "years_of_experience must not be negative",
		})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}
	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee builds the entity without an ID; the store assigns one.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	status := Status(r.Status)
	if r.Status == "" {
		status = StatusActive
	}
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return Employee{
		Name:              r.Name,
		Email:             r.Email,
		Position:          r.Position,
		Department:        r.Department,
		ExperienceLevel:   ExperienceLevel(r.ExperienceLevel),
		YearsOfExperience: r.YearsOfExperience,
		Salary:            r.Salary,
		JoinDate:          r.JoinDate,
		Skills:            skills,
		Status:            status,
		ManagerID:         r.ManagerID,
	}
}

// UpdateEmployeeRequest is a partial update: only non-nil fields are merged
// over the existing record, everything else is left untouched.
type UpdateEmployeeRequest struct {
	Name              *string          `json:"name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Position          *string          `json:"position,omitempty"`
	Department        *string          `json:"department,omitempty"`
	ExperienceLevel   *string          `json:"experience_level,omitempty"`
	YearsOfExperience *int             `json:"years_of_experience,omitempty"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	JoinDate          *string          `json:"join_date,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
	Status            *string          `json:"status,omitempty"`
	ManagerID         *string          `json:"manager_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.ExperienceLevel != nil && !ExperienceLevel(*r.ExperienceLevel).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "experience_level",
			Message: "experience_level must be one of: junior, mid, senior, lead",
		})
	}
	if r.YearsOfExperience != nil && *r.YearsOfExperience < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "years_of_experience",
			Message: "years_of_experience must not be negative",
		})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the present fields over e. Shallow merge, same contract as the
// store's update operation.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.ExperienceLevel != nil {
		e.ExperienceLevel = ExperienceLevel(*r.ExperienceLevel)
	}
	if r.YearsOfExperience != nil {
		e.YearsOfExperience = *r.YearsOfExperience
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.JoinDate != nil {
		e.JoinDate = *r.JoinDate
	}
	if r.Skills != nil {
		e.Skills = r.Skills
	}
	if r.Status != nil {
		e.Status = Status(*r.Status)
	}
	if r.ManagerID != nil {
		e.ManagerID = r.ManagerID
	}
}

// ListFilter narrows the employee listing the same way the directory view
// does: free-text search over name/position/email plus exact department and
// level filters. Zero values mean "no filter".
type ListFilter struct {
	Search     string
	Department string
	Level      string
}
