package client

import (
	"time"

	"github.com/google/uuid"
)

// Job is the wire shape the server returns for a listing entry.
type Job struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          float64   `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Position        int       `json:"position"`
	Company         *Company  `json:"company,omitempty"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Company struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	LogoURL  string    `json:"logo,omitempty"`
}

// JobDraft is the payload for creating or updating a job. Requirements is
// the raw comma-separated string the form collects; the server splits it.
type JobDraft struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Salary       float64 `json:"salary"`
	Location     string  `json:"location"`
	JobType      string  `json:"jobType"`
	Experience   string  `json:"experience"`
	Position     int     `json:"position"`
	CompanyID    string  `json:"companyId"`
}
