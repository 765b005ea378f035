package employee

import (
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	YearsOfExperience int             `json:"years_of_experience"`
	Salary            decimal.Decimal `json:"salary"`
	JoinDate          string          `json:"join_date"`
	Skills            []string        `json:"skills"`
	Status            Status          `json:"status"`
	ManagerID         *string         `json:"manager_id,omitempty"`
}

type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

// Levels lists every experience level in ordinal order.
var Levels = []ExperienceLevel{LevelJunior, LevelMid, LevelSenior, LevelLead}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
