package seeder

import (
	"context"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

type seedJob struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Requirements []string
	Salary       float64
	Location     string
	JobType      string
	Experience   string
	Positions    int
	CompanyID    uuid.UUID
}

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	jobs := []seedJob{
		{
			ID:           uuid.MustParse("9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b"),
			Title:        "Backend Developer",
			Description:  "Build and operate REST services for the hiring platform.",
			Requirements: []string{"Go", "PostgreSQL", "Docker"},
			Salary:       30000000,
			Location:     "Hà Nội",
			JobType:      "Full-time",
			Experience:   "2 years",
			Positions:    3,
			CompanyID:    CompanyDataWorksID,
		},
		{
			ID:           uuid.MustParse("1f2e3d4c-5b6a-4f7e-8d9c-0b1a2f3e4d5c"),
			Title:        "Frontend Developer",
			Description:  "Own the listing and application UI.",
			Requirements: []string{"React", "TypeScript"},
			Salary:       25000000,
			Location:     "Hồ Chí Minh",
			JobType:      "Full-time",
			Experience:   "1 year",
			Positions:    2,
			CompanyID:    CompanyTechVisionID,
		},
	}

	for _, j := range jobs {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (id, title, description, requirements, salary, location, job_type, experience_level, open_positions, company_id, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, j.Title, j.Description, j.Requirements, j.Salary, j.Location,
			j.JobType, j.Experience, j.Positions, j.CompanyID, RecruiterID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
