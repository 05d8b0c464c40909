package repositories

import (
	"errors"

	"gorm.io/gorm"

	"techvista_backend/internal/models"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrBatchNotFound    = errors.New("batch not found")
	ErrSlugAlreadyTaken = errors.New("slug already taken")
)

type CourseRepository interface {
	Create(db *gorm.DB, course *models.Course) error
	FindByID(db *gorm.DB, id string) (*models.Course, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Course, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]models.Course, error)
	Update(db *gorm.DB, course *models.Course) error
	Delete(db *gorm.DB, id string) error

	CreateBatch(db *gorm.DB, batch *models.Batch) error
	FindBatchByID(db *gorm.DB, id string) (*models.Batch, error)
	FindBatchesByCourse(db *gorm.DB, courseID string, activeOnly bool) ([]models.Batch, error)
	UpdateBatch(db *gorm.DB, batch *models.Batch) error
	DeleteBatch(db *gorm.DB, id string) error
}

type CourseRepositoryImpl struct{}

func NewCourseRepository() CourseRepository {
	return &CourseRepositoryImpl{}
}

func (r *CourseRepositoryImpl) Create(db *gorm.DB, course *models.Course) error {
	var existing models.Course
	if err := db.Where("slug = ?", course.Slug).First(&existing).Error; err == nil {
		return ErrSlugAlreadyTaken
	}
	return db.Create(course).Error
}

func (r *CourseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Batches", "active = ?", true).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) FindBySlug(db *gorm.DB, slug string) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Batches", "active = ?", true).First(&course, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) FindAll(db *gorm.DB, activeOnly bool) ([]models.Course, error) {
	var courses []models.Course
	query := db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&courses).Error
	return courses, err
}

func (r *CourseRepositoryImpl) Update(db *gorm.DB, course *models.Course) error {
	result := db.Model(&models.Course{}).Where("id = ?", course.ID).
		Select("title", "slug", "description", "duration", "level", "price", "syllabus", "active").
		Updates(course)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Batch{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Course{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCourseNotFound
		}
		return nil
	})
}

func (r *CourseRepositoryImpl) CreateBatch(db *gorm.DB, batch *models.Batch) error {
	return db.Create(batch).Error
}

func (r *CourseRepositoryImpl) FindBatchByID(db *gorm.DB, id string) (*models.Batch, error) {
	var batch models.Batch
	err := db.First(&batch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return &batch, nil
}

func (r *CourseRepositoryImpl) FindBatchesByCourse(db *gorm.DB, courseID string, activeOnly bool) ([]models.Batch, error) {
	var batches []models.Batch
	query := db.Where("course_id = ?", courseID).Order("start_date ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&batches).Error
	return batches, err
}

func (r *CourseRepositoryImpl) UpdateBatch(db *gorm.DB, batch *models.Batch) error {
	result := db.Model(&models.Batch{}).Where("id = ?", batch.ID).
		Select("name", "start_date", "schedule", "mode", "capacity", "active").
		Updates(batch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBatchNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) DeleteBatch(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Batch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBatchNotFound
	}
	return nil
}
