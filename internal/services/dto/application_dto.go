package dto

import "techvista_backend/internal/models"

// CreateApplicationRequest carries the multipart form fields of an
// instructor application. The resume file itself travels alongside as a
// file part and is validated before anything is persisted.
type CreateApplicationRequest struct {
	Name           string `form:"name" json:"name" validate:"required,min=2,max=100"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Phone          string `form:"phone" json:"phone" validate:"required,min=7,max=20"`
	Experience     string `form:"experience" json:"experience" validate:"required,max=100"`
	Qualifications string `form:"qualifications" json:"qualifications" validate:"required,max=1000"`
	LinkedIn       string `form:"linkedin" json:"linkedin" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,application_status"`
}

type ApplicationListResponse struct {
	Items    []models.InstructorApplication `json:"items"`
	Total    int64                          `json:"total"`
	Page     int                            `json:"page"`
	PageSize int                            `json:"pageSize"`
}
