package repositories

import (
	"errors"

	"gorm.io/gorm"

	"techvista_backend/internal/models"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

type EnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.Enquiry) error
	FindByID(db *gorm.DB, id string) (*models.Enquiry, error)
	FindAll(db *gorm.DB, filter EnquiryFilter) ([]models.Enquiry, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error
	Delete(db *gorm.DB, id string) error
}

type EnquiryFilter struct {
	Type     models.EnquiryType
	Status   models.EnquiryStatus
	Page     int
	PageSize int
}

type EnquiryRepositoryImpl struct{}

func NewEnquiryRepository() EnquiryRepository {
	return &EnquiryRepositoryImpl{}
}

func (r *EnquiryRepositoryImpl) Create(db *gorm.DB, enquiry *models.Enquiry) error {
	return db.Create(enquiry).Error
}

func (r *EnquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := db.First(&enquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepositoryImpl) FindAll(db *gorm.DB, filter EnquiryFilter) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	query := db.Model(&models.Enquiry{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.PageSize
	offset := (filter.Page - 1) * filter.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&enquiries).Error
	return enquiries, total, err
}

func (r *EnquiryRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error {
	result := db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

func (r *EnquiryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Enquiry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}
