package dto

import "techvista_backend/internal/models"

type CreateEnquiryRequest struct {
	Type  string                 `json:"type" validate:"required,enquiry_type"`
	Name  string                 `json:"name" validate:"required,min=2,max=100"`
	Email string                 `json:"email" validate:"required,email"`
	Phone string                 `json:"phone" validate:"omitempty,min=7,max=20"`
	Data  map[string]interface{} `json:"data"`
}

type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" validate:"required,enquiry_status"`
}

type EnquiryListResponse struct {
	Items    []models.Enquiry `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}
