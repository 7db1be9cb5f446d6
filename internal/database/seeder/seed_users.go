package seeder

import (
	"context"

	"jobboard/internal/database"
)

type UserSeeder struct{}

func (UserSeeder) Name() string { return "users" }

func (UserSeeder) Run(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, phone_number, role)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		RecruiterID, "Dev Recruiter", "recruiter@jobboard.local", "0900000001", "recruiter",
	)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, phone_number, role, resume_url, resume_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		ApplicantID, "Nguyễn Văn A", "applicant@jobboard.local", "0900000002", "student",
		"https://files.jobboard.local/resumes/nguyen-van-a.pdf", "nguyen-van-a.pdf",
	)
	return err
}
