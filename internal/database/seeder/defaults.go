package seeder

import "github.com/google/uuid"

// Fixed ids keep the seed idempotent and give the seed command a known
// recruiter to mint a dev token for.
var (
	RecruiterID = uuid.MustParse("5f3c1f4e-9d1a-4b6e-8f0a-1c2d3e4f5a6b")
	ApplicantID = uuid.MustParse("7a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c5d")

	CompanyTechVisionID = uuid.MustParse("0b9a8c7d-6e5f-4d3c-9b2a-1f0e9d8c7b6a")
	CompanyDataWorksID  = uuid.MustParse("2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f")
)

func Defaults() []Seeder {
	return []Seeder{
		CompanySeeder{},
		UserSeeder{},
		JobSeeder{},
		ApplicationSeeder{},
	}
}
