package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	ExperienceLevel string
	Position        int
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WithCompany is the shape list reads return: the job joined with the
// company it references. Company is nil when the referenced row is gone.
type WithCompany struct {
	Job
	Company *Company
}

type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
	CreatedAt   time.Time
}
