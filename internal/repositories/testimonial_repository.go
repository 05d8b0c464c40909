package repositories

import (
	"errors"

	"gorm.io/gorm"

	"techvista_backend/internal/models"
)

var (
	ErrTestimonialNotFound  = errors.New("testimonial not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
)

type TestimonialRepository interface {
	Create(db *gorm.DB, t *models.Testimonial) error
	FindByID(db *gorm.DB, id string) (*models.Testimonial, error)
	FindAll(db *gorm.DB, publishedOnly bool) ([]models.Testimonial, error)
	Update(db *gorm.DB, t *models.Testimonial) error
	Delete(db *gorm.DB, id string) error
}

type GalleryRepository interface {
	Create(db *gorm.DB, img *models.GalleryImage) error
	FindByID(db *gorm.DB, id string) (*models.GalleryImage, error)
	FindAll(db *gorm.DB, category string, publishedOnly bool) ([]models.GalleryImage, error)
	Update(db *gorm.DB, img *models.GalleryImage) error
	Delete(db *gorm.DB, id string) error
}

type TestimonialRepositoryImpl struct{}

func NewTestimonialRepository() TestimonialRepository {
	return &TestimonialRepositoryImpl{}
}

func (r *TestimonialRepositoryImpl) Create(db *gorm.DB, t *models.Testimonial) error {
	return db.Create(t).Error
}

func (r *TestimonialRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Testimonial, error) {
	var t models.Testimonial
	err := db.First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepositoryImpl) FindAll(db *gorm.DB, publishedOnly bool) ([]models.Testimonial, error) {
	var list []models.Testimonial
	query := db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *TestimonialRepositoryImpl) Update(db *gorm.DB, t *models.Testimonial) error {
	result := db.Model(&models.Testimonial{}).Where("id = ?", t.ID).
		Select("name", "role", "content", "rating", "photo_path", "published").
		Updates(t)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

type GalleryRepositoryImpl struct{}

func NewGalleryRepository() GalleryRepository {
	return &GalleryRepositoryImpl{}
}

func (r *GalleryRepositoryImpl) Create(db *gorm.DB, img *models.GalleryImage) error {
	return db.Create(img).Error
}

func (r *GalleryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := db.First(&img, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepositoryImpl) FindAll(db *gorm.DB, category string, publishedOnly bool) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	query := db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *GalleryRepositoryImpl) Update(db *gorm.DB, img *models.GalleryImage) error {
	result := db.Model(&models.GalleryImage{}).Where("id = ?", img.ID).
		Select("title", "category", "published").
		Updates(img)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

func (r *GalleryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}
