package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, requirements, salary, location, job_type, experience_level, open_positions, company_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary, j.Location,
		j.JobType, j.ExperienceLevel, j.Position, j.CompanyID, j.CreatedBy,
	)
	if err := row.Scan(&j.CreatedAt, &j.UpdatedAt); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, requirements, salary, location, job_type, experience_level, open_positions, company_id, created_by, created_at, updated_at
		 FROM jobs
		 WHERE id = $1`,
		id,
	)

	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary, &j.Location,
		&j.JobType, &j.ExperienceLevel, &j.Position, &j.CompanyID, &j.CreatedBy,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.WithCompany, error) {
	keyword := strings.TrimSpace(f.Keyword)

	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.description, j.requirements, j.salary, j.location, j.job_type, j.experience_level, j.open_positions, j.company_id, j.created_by, j.created_at, j.updated_at,
		        c.id, c.name, c.description, c.website, c.location, c.logo_url, c.created_at
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE $1 = '' OR j.title ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%'
		 ORDER BY j.created_at DESC`,
		keyword,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobsWithCompany(rows)
}

func (r *PostgresJobRepository) ListByCreator(ctx context.Context, f job.CreatorFilter) ([]job.WithCompany, error) {
	keyword := strings.TrimSpace(f.Keyword)

	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.description, j.requirements, j.salary, j.location, j.job_type, j.experience_level, j.open_positions, j.company_id, j.created_by, j.created_at, j.updated_at,
		        c.id, c.name, c.description, c.website, c.location, c.logo_url, c.created_at
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.created_by = $1
		   AND ($2 = '' OR j.title ILIKE '%' || $2 || '%' OR c.name ILIKE '%' || $2 || '%')
		 ORDER BY j.created_at DESC`,
		f.CreatedBy, keyword,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobsWithCompany(rows)
}

// Update replaces every job field except created_by, which stays with the
// original poster.
func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, requirements = $4, salary = $5, location = $6,
		     job_type = $7, experience_level = $8, open_positions = $9, company_id = $10,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING created_by, created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary, j.Location,
		j.JobType, j.ExperienceLevel, j.Position, j.CompanyID,
	)
	if err := row.Scan(&j.CreatedBy, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJobsWithCompany(rows database.Rows) ([]job.WithCompany, error) {
	out := make([]job.WithCompany, 0)
	for rows.Next() {
		var j job.WithCompany
		var (
			companyID      *uuid.UUID
			companyName    *string
			companyDesc    *string
			companyWebsite *string
			companyLoc     *string
			companyLogo    *string
			companyCreated *time.Time
		)
		err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary, &j.Location,
			&j.JobType, &j.ExperienceLevel, &j.Position, &j.CompanyID, &j.CreatedBy,
			&j.CreatedAt, &j.UpdatedAt,
			&companyID, &companyName, &companyDesc, &companyWebsite, &companyLoc, &companyLogo, &companyCreated,
		)
		if err != nil {
			return nil, err
		}
		if companyID != nil {
			j.Company = &job.Company{
				ID:          *companyID,
				Name:        deref(companyName),
				Description: deref(companyDesc),
				Website:     deref(companyWebsite),
				Location:    deref(companyLoc),
				LogoURL:     deref(companyLogo),
			}
			if companyCreated != nil {
				j.Company.CreatedAt = *companyCreated
			}
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
