package seeder

import (
	"context"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type CompanySeeder struct{}

func (CompanySeeder) Name() string { return "companies" }

type seedCompany struct {
	ID       uuid.UUID
	Name     string
	Desc     string
	Website  string
	Location string
}

func (CompanySeeder) Run(ctx context.Context, db database.DB) error {
	companies := []seedCompany{
		{ID: CompanyTechVisionID, Name: "TechVision", Desc: "Product studio building web platforms.", Website: "https://techvision.example.com", Location: "Hồ Chí Minh"},
		{ID: CompanyDataWorksID, Name: "DataWorks", Desc: "Analytics and data engineering consultancy.", Website: "https://dataworks.example.com", Location: "Hà Nội"},
	}

	for _, c := range companies {
		_, err := db.Exec(ctx,
			`INSERT INTO companies (id, name, description, website, location)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Desc, c.Website, c.Location,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
