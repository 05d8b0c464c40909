package dto

import "techvista_backend/internal/models"

type CreateEnrollmentRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid4"`
	BatchID  string `json:"batchId" validate:"omitempty,uuid4"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Message  string `json:"message" validate:"max=2000"`
}

type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,enrollment_status"`
}

type EnrollmentListResponse struct {
	Items    []models.Enrollment `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

type SyllabusDownloadRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
}
