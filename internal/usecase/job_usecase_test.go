package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Job

	listResult []job.WithCompany
	listErr    error

	createCalls int
	updateCalls int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[uuid.UUID]job.Job{}}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	m.createCalls++
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(context.Context, job.ListFilter) ([]job.WithCompany, error) {
	return m.listResult, m.listErr
}

func (m *mockJobRepo) ListByCreator(_ context.Context, f job.CreatorFilter) ([]job.WithCompany, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]job.WithCompany, 0)
	for _, j := range m.jobs {
		if j.CreatedBy == f.CreatedBy {
			out = append(out, job.WithCompany{Job: j})
		}
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	m.updateCalls++
	old, ok := m.jobs[j.ID]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	j.CreatedBy = old.CreatedBy
	j.CreatedAt = old.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

type mockAppRepo struct {
	byJob map[uuid.UUID][]application.WithApplicant
	err   error
}

func (m *mockAppRepo) ListByJobID(_ context.Context, jobID uuid.UUID) ([]application.WithApplicant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byJob[jobID], nil
}

func (m *mockAppRepo) UpdateStatus(context.Context, uuid.UUID, string) error {
	return m.err
}

func validInput() JobInput {
	salary := 30000000.0
	position := 3
	return JobInput{
		Title:        "Backend Developer",
		Description:  "Build REST services.",
		Requirements: "Go, PostgreSQL, Docker",
		Salary:       &salary,
		Location:     "Hà Nội",
		JobType:      "Full-time",
		Experience:   " 2 years ",
		Position:     &position,
		CompanyID:    uuid.NewString(),
	}
}

func TestJobUsecase_Create_MissingField(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	in.Title = ""

	_, err := uc.Create(context.Background(), in, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no persist on validation failure, got %d create calls", repo.createCalls)
	}
}

func TestJobUsecase_Create_MissingSalary(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	in.Salary = nil

	_, err := uc.Create(context.Background(), in, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_NonPositiveSalary(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	zero := 0.0
	in.Salary = &zero

	_, err := uc.Create(context.Background(), in, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Reason != "Invalid salary. It must be a positive number." {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no persist, got %d create calls", repo.createCalls)
	}
}

func TestJobUsecase_Create_NonPositivePosition(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	neg := -1
	in.Position = &neg

	_, err := uc.Create(context.Background(), in, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_InvalidCompanyID(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	in.CompanyID = "not-a-uuid"

	_, err := uc.Create(context.Background(), in, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Create_NormalizesInput(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	requester := uuid.New()
	in := validInput()
	in.Requirements = "Node, SQL , Docker"

	created, err := uc.Create(context.Background(), in, requester)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"Node", "SQL", "Docker"}
	if len(created.Requirements) != len(want) {
		t.Fatalf("expected %d requirements, got %d", len(want), len(created.Requirements))
	}
	for i := range want {
		if created.Requirements[i] != want[i] {
			t.Fatalf("requirement %d: expected %q, got %q", i, want[i], created.Requirements[i])
		}
	}
	if created.ExperienceLevel != "2 years" {
		t.Fatalf("expected trimmed experience, got %q", created.ExperienceLevel)
	}
	if created.CreatedBy != requester {
		t.Fatalf("expected created_by to equal requester")
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
}

func TestJobUsecase_CreateThenGet_RoundTrip(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{byJob: map[uuid.UUID][]application.WithApplicant{}}, nil, nil, nil)

	created, err := uc.Create(context.Background(), validInput(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	detail, err := uc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if detail.Title != created.Title || detail.Salary != created.Salary || detail.Position != created.Position {
		t.Fatalf("round trip mismatch: %+v vs %+v", detail.Job, created)
	}
}

func TestJobUsecase_GetByID_NotFound(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), &mockAppRepo{}, nil, nil, nil)

	_, err := uc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobUsecase_GetByID_JoinsApplications(t *testing.T) {
	repo := newMockJobRepo()
	apps := &mockAppRepo{byJob: map[uuid.UUID][]application.WithApplicant{}}
	uc := NewJobUsecase(repo, apps, nil, nil, nil)

	created, err := uc.Create(context.Background(), validInput(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	apps.byJob[created.ID] = []application.WithApplicant{{
		Application: application.Application{ID: uuid.New(), JobID: created.ID, Status: application.StatusPending},
		Applicant:   application.Applicant{FullName: "Nguyễn Văn A", Email: "a@example.com"},
	}}

	detail, err := uc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(detail.Applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(detail.Applications))
	}
	if detail.Applications[0].Applicant.FullName != "Nguyễn Văn A" {
		t.Fatalf("unexpected applicant: %+v", detail.Applications[0].Applicant)
	}
}

func TestJobUsecase_Update_NotFound(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	_, err := uc.Update(context.Background(), uuid.New(), validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("expected store unchanged")
	}
}

func TestJobUsecase_Update_PreservesCreator(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	creator := uuid.New()
	created, err := uc.Create(context.Background(), validInput(), creator)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := validInput()
	in.Title = "Senior Backend Developer"

	updated, err := uc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != "Senior Backend Developer" {
		t.Fatalf("expected replaced title, got %q", updated.Title)
	}
	if updated.CreatedBy != creator {
		t.Fatalf("expected created_by preserved, got %s", updated.CreatedBy)
	}
}

func TestJobUsecase_Update_MissingField(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	in := validInput()
	in.Description = ""

	_, err := uc.Update(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no update call on validation failure")
	}
}

func TestJobUsecase_Delete_Idempotence(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	created, err := uc.Create(context.Background(), validInput(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestJobUsecase_List_InternalError(t *testing.T) {
	repo := newMockJobRepo()
	repo.listErr = errors.New("connection refused")
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	_, err := uc.List(context.Background(), "")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobUsecase_List_EmptyResultIsNotAnError(t *testing.T) {
	repo := newMockJobRepo()
	repo.listResult = []job.WithCompany{}
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	jobs, err := uc.List(context.Background(), "nothing matches this")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty result, got %d", len(jobs))
	}
}

func TestJobUsecase_ListByCreator_OnlyOwnJobs(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, &mockAppRepo{}, nil, nil, nil)

	mine := uuid.New()
	other := uuid.New()

	if _, err := uc.Create(context.Background(), validInput(), mine); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), validInput(), other); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	jobs, err := uc.ListByCreator(context.Background(), mine, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].CreatedBy != mine {
		t.Fatalf("expected own job only")
	}
}
