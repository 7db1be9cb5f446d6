package seeder

import (
	"context"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type ApplicationSeeder struct{}

func (ApplicationSeeder) Name() string { return "applications" }

func (ApplicationSeeder) Run(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, status)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		uuid.MustParse("3a4b5c6d-7e8f-4a9b-8c0d-1e2f3a4b5c6d"),
		uuid.MustParse("9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b"),
		ApplicantID,
		"pending",
	)
	return err
}
