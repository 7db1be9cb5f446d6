package v1

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    usecase.ListCache
	Notifier interface {
		NotifyJobsChanged(event string, jobID uuid.UUID)
	}
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(deps.Config.JWT.AccessSecret, deps.Config.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)

	jobUC := usecase.NewJobUsecase(jobRepo, appRepo, deps.Cache, deps.Notifier, deps.Logger)
	appUC := usecase.NewApplicationUsecase(jobRepo, appRepo, deps.Logger)

	jobsHandler := handler.NewJobsHandler(jobUC)
	appsHandler := handler.NewApplicationsHandler(appUC)

	jobs := r.Group("/jobs")
	jobsProtected := jobs.Group("", authMw.Middleware())

	// /jobs/admin must be registered before /jobs/:id.
	jobsProtected.Get("/admin", jobsHandler.HandleListByCreator)
	jobs.Get("/", jobsHandler.HandleList)
	jobs.Get("/:id", jobsHandler.HandleGetByID)
	jobsProtected.Get("/:id/applicants", appsHandler.HandleListApplicants)
	jobsProtected.Post("/", jobsHandler.HandleCreate)
	jobsProtected.Put("/:id", jobsHandler.HandleUpdate)
	jobsProtected.Delete("/:id", jobsHandler.HandleDelete)

	applications := r.Group("/applications", authMw.Middleware())
	applications.Post("/status/:id", appsHandler.HandleUpdateStatus)
}
