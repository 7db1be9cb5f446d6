package usecase

import (
	"context"
	"errors"
	"log"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.WithApplicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type Applications struct {
	jobs         job.Repository
	applications application.Repository
	logger       *log.Logger
}

func NewApplicationUsecase(jobs job.Repository, applications application.Repository, logger *log.Logger) *Applications {
	return &Applications{jobs: jobs, applications: applications, logger: logger}
}

func (u *Applications) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.WithApplicant, error) {
	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrNotFound
		}
		u.logf("get job failed: %v", err)
		return nil, ErrInternal
	}

	apps, err := u.applications.ListByJobID(ctx, jobID)
	if err != nil {
		u.logf("list applicants failed: %v", err)
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !application.ValidStatus(status) {
		return invalid("Invalid status. Must be Accepted or Rejected.")
	}

	if err := u.applications.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		u.logf("update application status failed: %v", err)
		return ErrInternal
	}
	return nil
}

func (u *Applications) logf(format string, args ...any) {
	if u == nil || u.logger == nil {
		return
	}
	u.logger.Printf(format, args...)
}
