package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

var ErrNotFound = errors.New("application not found")

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      string
	CreatedAt   time.Time
}

// Applicant carries the subset of the user record the applicants view
// shows. Resume fields are empty when the applicant has not uploaded one.
type Applicant struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	PhoneNumber string
	ResumeURL   string
	ResumeName  string
}

type WithApplicant struct {
	Application
	Applicant Applicant
}

func ValidStatus(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

type Repository interface {
	ListByJobID(ctx context.Context, jobID uuid.UUID) ([]WithApplicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
