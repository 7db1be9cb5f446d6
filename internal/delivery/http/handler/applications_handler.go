package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/application"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

// HandleListApplicants serves the recruiter's applicants view for one job.
func (h *ApplicationsHandler) HandleListApplicants(c fiber.Ctx) error {
	if _, ok := middleware.RequesterID(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id.", err)
	}

	apps, err := h.uc.ListByJob(c.Context(), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}

	return response.Success(c, fiber.StatusOK, "", map[string]any{
		"applications": out,
	})
}

func (h *ApplicationsHandler) HandleUpdateStatus(c fiber.Ctx) error {
	if _, ok := middleware.RequesterID(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id.", err)
	}

	var req dto.StatusUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	if err := h.uc.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Status updated successfully.", nil)
}

func toApplicationResponse(a application.WithApplicant) dto.ApplicationResponse {
	applicant := dto.ApplicantResponse{
		ID:          a.Applicant.ID,
		FullName:    a.Applicant.FullName,
		Email:       a.Applicant.Email,
		PhoneNumber: a.Applicant.PhoneNumber,
	}
	if a.Applicant.ResumeURL != "" {
		applicant.Profile = &dto.ApplicantProfileResponse{
			Resume:             a.Applicant.ResumeURL,
			ResumeOriginalName: a.Applicant.ResumeName,
		}
	}

	return dto.ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		Applicant: applicant,
	}
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		msg := response.MessageBadRequest
		var ve *usecase.ValidationError
		if errors.As(err, &ve) && ve.Reason != "" {
			msg = ve.Reason
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msg, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
