package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// JobInput is the normalized write payload for Create and Update. Salary
// and Position are pointers so a missing field is distinguishable from a
// zero one.
type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Salary       *float64
	Location     string
	JobType      string
	Experience   string
	Position     *int
	CompanyID    string
}

type JobDetail struct {
	job.Job
	Applications []application.WithApplicant
}

type JobUsecase interface {
	Create(ctx context.Context, in JobInput, createdBy uuid.UUID) (job.Job, error)
	List(ctx context.Context, keyword string) ([]job.WithCompany, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobDetail, error)
	ListByCreator(ctx context.Context, createdBy uuid.UUID, keyword string) ([]job.WithCompany, error)
	Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobsChangedNotifier interface {
	NotifyJobsChanged(event string, jobID uuid.UUID)
}

type Jobs struct {
	jobs         job.Repository
	applications application.Repository
	cache        ListCache
	notifier     jobsChangedNotifier
	logger       *log.Logger
}

func NewJobUsecase(jobs job.Repository, applications application.Repository, cache ListCache, notifier jobsChangedNotifier, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, applications: applications, cache: cache, notifier: notifier, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, in JobInput, createdBy uuid.UUID) (job.Job, error) {
	j, err := normalizeJobInput(in)
	if err != nil {
		return job.Job{}, err
	}
	if createdBy == uuid.Nil {
		return job.Job{}, invalid("Missing requester identity.")
	}

	j.ID = uuid.New()
	j.CreatedBy = createdBy

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		u.logf("create job failed: %v", err)
		return job.Job{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	u.notify("job_created", created.ID)
	return created, nil
}

func (u *Jobs) List(ctx context.Context, keyword string) ([]job.WithCompany, error) {
	keyword = strings.TrimSpace(keyword)

	cacheKey := ""
	if u.cache != nil {
		cacheKey = JobsListCacheKey(keyword)
		var cached []job.WithCompany
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Jobs] cache HIT: %s", cacheKey)
			return cached, nil
		}
	}

	out, err := u.jobs.List(ctx, job.ListFilter{Keyword: keyword})
	if err != nil {
		u.logf("list jobs failed: %v", err)
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

func (u *Jobs) GetByID(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return JobDetail{}, ErrNotFound
		}
		u.logf("get job failed: %v", err)
		return JobDetail{}, ErrInternal
	}

	apps, err := u.applications.ListByJobID(ctx, id)
	if err != nil {
		u.logf("list applications failed: %v", err)
		return JobDetail{}, ErrInternal
	}

	return JobDetail{Job: j, Applications: apps}, nil
}

// ListByCreator returns the requester's own postings, newest first. An
// empty result is a valid outcome, not an error.
func (u *Jobs) ListByCreator(ctx context.Context, createdBy uuid.UUID, keyword string) ([]job.WithCompany, error) {
	if createdBy == uuid.Nil {
		return nil, invalid("Missing requester identity.")
	}

	out, err := u.jobs.ListByCreator(ctx, job.CreatorFilter{
		CreatedBy: createdBy,
		Keyword:   strings.TrimSpace(keyword),
	})
	if err != nil {
		u.logf("list jobs by creator failed: %v", err)
		return nil, ErrInternal
	}
	return out, nil
}

// Update is a whole-record replace: every field is required, and the
// original poster stays recorded as created_by.
func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Job, error) {
	j, err := normalizeJobInput(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = id

	updated, err := u.jobs.Update(ctx, j)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		u.logf("update job failed: %v", err)
		return job.Job{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	u.notify("job_updated", updated.ID)
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		u.logf("delete job failed: %v", err)
		return ErrInternal
	}

	u.invalidateListCache(ctx)
	u.notify("job_deleted", id)
	return nil
}

func normalizeJobInput(in JobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	requirements := strings.TrimSpace(in.Requirements)
	location := strings.TrimSpace(in.Location)
	jobType := strings.TrimSpace(in.JobType)
	experience := strings.TrimSpace(in.Experience)
	companyID := strings.TrimSpace(in.CompanyID)

	if title == "" || description == "" || requirements == "" ||
		in.Salary == nil || location == "" || jobType == "" ||
		experience == "" || in.Position == nil || companyID == "" {
		return job.Job{}, invalid("Missing required fields.")
	}

	salary := *in.Salary
	if math.IsNaN(salary) || math.IsInf(salary, 0) || salary <= 0 {
		return job.Job{}, invalid("Invalid salary. It must be a positive number.")
	}
	if *in.Position <= 0 {
		return job.Job{}, invalid("Invalid position. It must be a positive number.")
	}

	company, err := uuid.Parse(companyID)
	if err != nil {
		return job.Job{}, invalid("Invalid company id.")
	}

	return job.Job{
		Title:           title,
		Description:     description,
		Requirements:    splitRequirements(in.Requirements),
		Salary:          salary,
		Location:        location,
		JobType:         jobType,
		ExperienceLevel: experience,
		Position:        *in.Position,
		CompanyID:       company,
	}, nil
}

// splitRequirements turns the comma-separated input into an ordered list,
// trimming each token. Order and duplicates are kept as entered.
func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func (u *Jobs) invalidateListCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, JobsListCachePattern); err != nil {
		u.logf("[Jobs] cache invalidation failed: %v", err)
	}
}

func (u *Jobs) notify(event string, jobID uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyJobsChanged(event, jobID)
}

func (u *Jobs) logf(format string, args ...any) {
	if u == nil || u.logger == nil {
		return
	}
	u.logger.Printf(format, args...)
}
