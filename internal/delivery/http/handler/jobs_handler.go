package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) HandleCreate(c fiber.Ctx) error {
	requester, ok := middleware.RequesterID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.uc.Create(c.Context(), jobInputFromRequest(req), requester)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "New job created successfully.", map[string]any{
		"job": toJobResponse(created),
	})
}

func (h *JobsHandler) HandleList(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context(), c.Query("keyword"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", map[string]any{
		"jobs": toJobListResponse(jobs),
	})
}

func (h *JobsHandler) HandleGetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id.", err)
	}

	detail, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	out := toJobResponse(detail.Job)
	out.Applications = make([]dto.ApplicationResponse, 0, len(detail.Applications))
	for _, a := range detail.Applications {
		out.Applications = append(out.Applications, toApplicationResponse(a))
	}

	return response.Success(c, fiber.StatusOK, "", map[string]any{
		"job": out,
	})
}

func (h *JobsHandler) HandleListByCreator(c fiber.Ctx) error {
	requester, ok := middleware.RequesterID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	jobs, err := h.uc.ListByCreator(c.Context(), requester, c.Query("keyword"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", map[string]any{
		"jobs": toJobListResponse(jobs),
	})
}

func (h *JobsHandler) HandleUpdate(c fiber.Ctx) error {
	if _, ok := middleware.RequesterID(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id.", err)
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	updated, err := h.uc.Update(c.Context(), id, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated successfully.", map[string]any{
		"job": toJobResponse(updated),
	})
}

func (h *JobsHandler) HandleDelete(c fiber.Ctx) error {
	if _, ok := middleware.RequesterID(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id.", err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job deleted successfully.", nil)
}

func jobInputFromRequest(req dto.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Experience:   req.Experience,
		Position:     req.Position,
		CompanyID:    req.CompanyID,
	}
}

func toJobResponse(j job.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		CompanyID:       j.CompanyID,
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func toJobListResponse(jobs []job.WithCompany) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		item := toJobResponse(j.Job)
		if j.Company != nil {
			item.Company = &dto.CompanyResponse{
				ID:          j.Company.ID,
				Name:        j.Company.Name,
				Description: j.Company.Description,
				Website:     j.Company.Website,
				Location:    j.Company.Location,
				LogoURL:     j.Company.LogoURL,
			}
		}
		out = append(out, item)
	}
	return out
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		msg := response.MessageBadRequest
		var ve *usecase.ValidationError
		if errors.As(err, &ve) && ve.Reason != "" {
			msg = ve.Reason
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msg, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found.", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
