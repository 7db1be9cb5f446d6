package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]application.WithApplicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at,
		        u.id, COALESCE(u.full_name, ''), COALESCE(u.email, ''), COALESCE(u.phone_number, ''), COALESCE(u.resume_url, ''), COALESCE(u.resume_name, '')
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithApplicant, 0)
	for rows.Next() {
		var a application.WithApplicant
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt,
			&a.Applicant.ID, &a.Applicant.FullName, &a.Applicant.Email,
			&a.Applicant.PhoneNumber, &a.Applicant.ResumeURL, &a.Applicant.ResumeName,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}
