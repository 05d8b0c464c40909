package services

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
	"techvista_backend/internal/storage"
	"techvista_backend/pkg/apperrors"
)

// CatalogService owns the public site content: courses with their batches,
// testimonials and the gallery.
type CatalogService interface {
	CreateCourse(ctx context.Context, db *gorm.DB, req dto.CourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, db *gorm.DB, idOrSlug string) (*models.Course, error)
	ListCourses(ctx context.Context, db *gorm.DB, activeOnly bool) ([]models.Course, error)
	UpdateCourse(ctx context.Context, db *gorm.DB, id string, req dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, db *gorm.DB, id string) error
	UploadSyllabus(ctx context.Context, db *gorm.DB, courseID string, file *multipart.FileHeader) (*models.Course, error)

	CreateBatch(ctx context.Context, db *gorm.DB, courseID string, req dto.BatchRequest) (*models.Batch, error)
	ListBatches(ctx context.Context, db *gorm.DB, courseID string, activeOnly bool) ([]models.Batch, error)
	UpdateBatch(ctx context.Context, db *gorm.DB, id string, req dto.BatchRequest) (*models.Batch, error)
	DeleteBatch(ctx context.Context, db *gorm.DB, id string) error

	CreateTestimonial(ctx context.Context, db *gorm.DB, req dto.TestimonialRequest) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, db *gorm.DB, publishedOnly bool) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, db *gorm.DB, id string, req dto.TestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, db *gorm.DB, id string) error

	UploadGalleryImage(ctx context.Context, db *gorm.DB, req dto.GalleryImageRequest, file *multipart.FileHeader) (*models.GalleryImage, error)
	ListGallery(ctx context.Context, db *gorm.DB, category string, publishedOnly bool) ([]models.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, db *gorm.DB, id string, req dto.GalleryImageRequest) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, db *gorm.DB, id string) error
}

type CatalogServiceImpl struct {
	courseRepo      repositories.CourseRepository
	testimonialRepo repositories.TestimonialRepository
	galleryRepo     repositories.GalleryRepository
	store           storage.Storage
	imagePolicy     UploadPolicy
	documentPolicy  UploadPolicy
}

func NewCatalogService(
	courseRepo repositories.CourseRepository,
	testimonialRepo repositories.TestimonialRepository,
	galleryRepo repositories.GalleryRepository,
	store storage.Storage,
	imagePolicy, documentPolicy UploadPolicy,
) CatalogService {
	return &CatalogServiceImpl{
		courseRepo:      courseRepo,
		testimonialRepo: testimonialRepo,
		galleryRepo:     galleryRepo,
		store:           store,
		imagePolicy:     imagePolicy,
		documentPolicy:  documentPolicy,
	}
}

// --- Courses ---

func (s *CatalogServiceImpl) CreateCourse(ctx context.Context, db *gorm.DB, req dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Duration:    req.Duration,
		Level:       req.Level,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		course.Active = *req.Active
	}

	if err := s.courseRepo.Create(db, course); err != nil {
		if apperrors.Is(err, repositories.ErrSlugAlreadyTaken) {
			return nil, apperrors.ErrConflict(err, "catalog", "A course with this slug already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "course created", "course_id", course.ID, "slug", course.Slug)
	return course, nil
}

// GetCourse accepts either the UUID or the public slug.
func (s *CatalogServiceImpl) GetCourse(ctx context.Context, db *gorm.DB, idOrSlug string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(db, idOrSlug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			course, err = s.courseRepo.FindBySlug(db, idOrSlug)
		}
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return course, nil
}

func (s *CatalogServiceImpl) ListCourses(ctx context.Context, db *gorm.DB, activeOnly bool) ([]models.Course, error) {
	courses, err := s.courseRepo.FindAll(db, activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return courses, nil
}

func (s *CatalogServiceImpl) UpdateCourse(ctx context.Context, db *gorm.DB, id string, req dto.CourseRequest) (*models.Course, error) {
	existing, err := s.courseRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Slug != existing.Slug {
		if _, err := s.courseRepo.FindBySlug(db, req.Slug); err == nil {
			return nil, apperrors.ErrConflict(nil, "catalog", "A course with this slug already exists")
		}
	}

	existing.Title = req.Title
	existing.Slug = req.Slug
	existing.Description = req.Description
	existing.Duration = req.Duration
	existing.Level = req.Level
	existing.Price = req.Price
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := s.courseRepo.Update(db, existing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.courseRepo.FindByID(db, id)
}

func (s *CatalogServiceImpl) DeleteCourse(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.courseRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Course not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "course deleted", "course_id", id)
	return nil
}

func (s *CatalogServiceImpl) UploadSyllabus(ctx context.Context, db *gorm.DB, courseID string, file *multipart.FileHeader) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(db, courseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}

	key, err := storeUpload(ctx, s.store, "syllabi", file, s.documentPolicy)
	if err != nil {
		return nil, err
	}

	old := course.Syllabus
	course.Syllabus = key
	if err := db.Model(&models.Course{}).Where("id = ?", course.ID).Update("syllabus", key).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	if old != "" && old != key {
		if delErr := s.store.Delete(ctx, old); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove replaced syllabus", delErr, "key", old)
		}
	}
	return course, nil
}

// --- Batches ---

func (s *CatalogServiceImpl) CreateBatch(ctx context.Context, db *gorm.DB, courseID string, req dto.BatchRequest) (*models.Batch, error) {
	if _, err := s.courseRepo.FindByID(db, courseID); err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}

	batch := &models.Batch{
		CourseID:  courseID,
		Name:      req.Name,
		StartDate: req.StartDate,
		Schedule:  req.Schedule,
		Mode:      models.BatchMode(req.Mode),
		Capacity:  req.Capacity,
		Active:    true,
	}
	if req.Active != nil {
		batch.Active = *req.Active
	}

	if err := s.courseRepo.CreateBatch(db, batch); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batch, nil
}

func (s *CatalogServiceImpl) ListBatches(ctx context.Context, db *gorm.DB, courseID string, activeOnly bool) ([]models.Batch, error) {
	batches, err := s.courseRepo.FindBatchesByCourse(db, courseID, activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batches, nil
}

func (s *CatalogServiceImpl) UpdateBatch(ctx context.Context, db *gorm.DB, id string, req dto.BatchRequest) (*models.Batch, error) {
	batch, err := s.courseRepo.FindBatchByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Batch not found")
		}
		return nil, apperrors.InternalError(err)
	}

	batch.Name = req.Name
	batch.StartDate = req.StartDate
	batch.Schedule = req.Schedule
	batch.Mode = models.BatchMode(req.Mode)
	batch.Capacity = req.Capacity
	if req.Active != nil {
		batch.Active = *req.Active
	}

	if err := s.courseRepo.UpdateBatch(db, batch); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batch, nil
}

func (s *CatalogServiceImpl) DeleteBatch(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.courseRepo.DeleteBatch(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrBatchNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Batch not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Testimonials ---

func (s *CatalogServiceImpl) CreateTestimonial(ctx context.Context, db *gorm.DB, req dto.TestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Name:      req.Name,
		Role:      req.Role,
		Content:   req.Content,
		Rating:    req.Rating,
		Published: true,
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if req.Published != nil {
		t.Published = *req.Published
	}

	if err := s.testimonialRepo.Create(db, t); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return t, nil
}

func (s *CatalogServiceImpl) ListTestimonials(ctx context.Context, db *gorm.DB, publishedOnly bool) ([]models.Testimonial, error) {
	list, err := s.testimonialRepo.FindAll(db, publishedOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return list, nil
}

func (s *CatalogServiceImpl) UpdateTestimonial(ctx context.Context, db *gorm.DB, id string, req dto.TestimonialRequest) (*models.Testimonial, error) {
	t, err := s.testimonialRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Testimonial not found")
		}
		return nil, apperrors.InternalError(err)
	}

	t.Name = req.Name
	t.Role = req.Role
	t.Content = req.Content
	if req.Rating != 0 {
		t.Rating = req.Rating
	}
	if req.Published != nil {
		t.Published = *req.Published
	}

	if err := s.testimonialRepo.Update(db, t); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return t, nil
}

func (s *CatalogServiceImpl) DeleteTestimonial(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.testimonialRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrTestimonialNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Testimonial not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Gallery ---

func (s *CatalogServiceImpl) UploadGalleryImage(ctx context.Context, db *gorm.DB, req dto.GalleryImageRequest, file *multipart.FileHeader) (*models.GalleryImage, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("Image file is required")
	}

	key, err := storeUpload(ctx, s.store, "gallery", file, s.imagePolicy)
	if err != nil {
		return nil, err
	}

	img := &models.GalleryImage{
		Title:     req.Title,
		Category:  req.Category,
		Path:      key,
		Published: true,
	}
	if req.Published != nil {
		img.Published = *req.Published
	}

	if err := s.galleryRepo.Create(db, img); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove orphaned gallery file", delErr, "key", key)
		}
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *CatalogServiceImpl) ListGallery(ctx context.Context, db *gorm.DB, category string, publishedOnly bool) ([]models.GalleryImage, error) {
	list, err := s.galleryRepo.FindAll(db, category, publishedOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return list, nil
}

func (s *CatalogServiceImpl) UpdateGalleryImage(ctx context.Context, db *gorm.DB, id string, req dto.GalleryImageRequest) (*models.GalleryImage, error) {
	img, err := s.galleryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGalleryImageNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Gallery image not found")
		}
		return nil, apperrors.InternalError(err)
	}

	img.Title = req.Title
	img.Category = req.Category
	if req.Published != nil {
		img.Published = *req.Published
	}

	if err := s.galleryRepo.Update(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *CatalogServiceImpl) DeleteGalleryImage(ctx context.Context, db *gorm.DB, id string) error {
	img, err := s.galleryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGalleryImageNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Gallery image not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.galleryRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	if img.Path != "" {
		if delErr := s.store.Delete(ctx, img.Path); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove gallery file", delErr, "key", img.Path)
		}
	}
	return nil
}
