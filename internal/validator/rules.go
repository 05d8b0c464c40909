package validator

import (
	"github.com/go-playground/validator/v10"

	"techvista_backend/internal/models"
)

func registerRules(v *validator.Validate) {
	v.RegisterValidation("enquiry_type", func(fl validator.FieldLevel) bool {
		return models.ValidEnquiryType(models.EnquiryType(fl.Field().String()))
	})
	v.RegisterValidation("enquiry_status", func(fl validator.FieldLevel) bool {
		return models.ValidEnquiryStatus(models.EnquiryStatus(fl.Field().String()))
	})
	v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
		return models.ValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
	})
	v.RegisterValidation("enrollment_status", func(fl validator.FieldLevel) bool {
		return models.ValidEnrollmentStatus(models.EnrollmentStatus(fl.Field().String()))
	})
	v.RegisterValidation("batch_mode", func(fl validator.FieldLevel) bool {
		switch models.BatchMode(fl.Field().String()) {
		case models.BatchModeOnline, models.BatchModeOffline, models.BatchModeHybrid:
			return true
		}
		return false
	})
}
