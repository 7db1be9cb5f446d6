package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicantProfileResponse struct {
	Resume             string `json:"resume"`
	ResumeOriginalName string `json:"resumeOriginalName"`
}

type ApplicantResponse struct {
	ID          uuid.UUID                 `json:"id"`
	FullName    string                    `json:"fullname"`
	Email       string                    `json:"email"`
	PhoneNumber string                    `json:"phoneNumber"`
	Profile     *ApplicantProfileResponse `json:"profile,omitempty"`
}

type ApplicationResponse struct {
	ID        uuid.UUID         `json:"id"`
	JobID     uuid.UUID         `json:"jobId"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Applicant ApplicantResponse `json:"applicant"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
