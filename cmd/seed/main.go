package main

import (
	"context"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/pkg/jwt"

	"github.com/joho/godotenv"
)

// Seeds demo companies, users and jobs, and prints a dev access token for
// the seeded recruiter so the protected endpoints can be exercised locally.
func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: cfg.App.MigrationsDir}).Run(ctx, db); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	logger.Printf("seed complete")

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	token, err := jwtSvc.GenerateAccessToken(seeder.RecruiterID, "recruiter@jobboard.local")
	if err != nil {
		logger.Fatalf("failed to mint dev token: %v", err)
	}
	logger.Printf("dev recruiter token: %s", token)
}
