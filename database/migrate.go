package database

import (
	"gorm.io/gorm"

	"techvista_backend/internal/models"
)

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.LoginOTP{},
		&models.Enquiry{},
		&models.InstructorApplication{},
		&models.Course{},
		&models.Batch{},
		&models.Testimonial{},
		&models.GalleryImage{},
		&models.Enrollment{},
		&models.SyllabusRequest{},
	)
}
