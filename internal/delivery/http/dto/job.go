package dto

import (
	"time"

	"github.com/google/uuid"
)

// JobRequest is the write payload shared by create and update. Salary and
// position are pointers so "field absent" and "field zero" validate
// differently.
type JobRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Salary       *float64 `json:"salary"`
	Location     string   `json:"location"`
	JobType      string   `json:"jobType"`
	Experience   string   `json:"experience"`
	Position     *int     `json:"position"`
	CompanyID    string   `json:"companyId"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	LogoURL     string    `json:"logo,omitempty"`
}

type JobResponse struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Requirements    []string              `json:"requirements"`
	Salary          float64               `json:"salary"`
	Location        string                `json:"location"`
	JobType         string                `json:"jobType"`
	ExperienceLevel string                `json:"experienceLevel"`
	Position        int                   `json:"position"`
	CompanyID       uuid.UUID             `json:"companyId"`
	Company         *CompanyResponse      `json:"company,omitempty"`
	CreatedBy       uuid.UUID             `json:"created_by"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	Applications    []ApplicationResponse `json:"applications,omitempty"`
}
