package repositories

import (
	"errors"

	"gorm.io/gorm"

	"techvista_backend/internal/models"
)

var ErrEnrollmentNotFound = errors.New("enrollment not found")

type EnrollmentRepository interface {
	Create(db *gorm.DB, e *models.Enrollment) error
	FindByID(db *gorm.DB, id string) (*models.Enrollment, error)
	FindAll(db *gorm.DB, filter EnrollmentFilter) ([]models.Enrollment, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.EnrollmentStatus) error

	CreateSyllabusRequest(db *gorm.DB, req *models.SyllabusRequest) error
	FindSyllabusRequests(db *gorm.DB, courseID string) ([]models.SyllabusRequest, error)
}

type EnrollmentFilter struct {
	CourseID string
	Status   models.EnrollmentStatus
	Page     int
	PageSize int
}

type EnrollmentRepositoryImpl struct{}

func NewEnrollmentRepository() EnrollmentRepository {
	return &EnrollmentRepositoryImpl{}
}

func (r *EnrollmentRepositoryImpl) Create(db *gorm.DB, e *models.Enrollment) error {
	return db.Create(e).Error
}

func (r *EnrollmentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Enrollment, error) {
	var e models.Enrollment
	err := db.First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepositoryImpl) FindAll(db *gorm.DB, filter EnrollmentFilter) ([]models.Enrollment, int64, error) {
	var list []models.Enrollment
	query := db.Model(&models.Enrollment{})

	if filter.CourseID != "" {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize).
		Find(&list).Error
	return list, total, err
}

func (r *EnrollmentRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.EnrollmentStatus) error {
	result := db.Model(&models.Enrollment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepositoryImpl) CreateSyllabusRequest(db *gorm.DB, req *models.SyllabusRequest) error {
	return db.Create(req).Error
}

func (r *EnrollmentRepositoryImpl) FindSyllabusRequests(db *gorm.DB, courseID string) ([]models.SyllabusRequest, error) {
	var list []models.SyllabusRequest
	query := db.Order("created_at DESC")
	if courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	err := query.Find(&list).Error
	return list, err
}
