package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type ListFilter struct {
	// Keyword is matched case-insensitively as a substring against
	// title and description.
	Keyword string
}

type CreatorFilter struct {
	CreatedBy uuid.UUID
	// Keyword, when set, is matched against title and company name.
	Keyword string
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f ListFilter) ([]WithCompany, error)
	ListByCreator(ctx context.Context, f CreatorFilter) ([]WithCompany, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
