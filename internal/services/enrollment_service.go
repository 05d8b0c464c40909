package services

import (
	"context"

	"gorm.io/gorm"

	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
)

type EnrollmentService interface {
	Create(ctx context.Context, db *gorm.DB, req dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Enrollment, error)
	List(ctx context.Context, db *gorm.DB, filter repositories.EnrollmentFilter) (*dto.EnrollmentListResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error)

	// RequestSyllabus records the lead and returns the course whose syllabus
	// was asked for.
	RequestSyllabus(ctx context.Context, db *gorm.DB, courseID string, req dto.SyllabusDownloadRequest) (*models.Course, error)
	ListSyllabusRequests(ctx context.Context, db *gorm.DB, courseID string) ([]models.SyllabusRequest, error)
}

type EnrollmentServiceImpl struct {
	enrollmentRepo repositories.EnrollmentRepository
	courseRepo     repositories.CourseRepository
}

func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository, courseRepo repositories.CourseRepository) EnrollmentService {
	return &EnrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *EnrollmentServiceImpl) Create(ctx context.Context, db *gorm.DB, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	course, err := s.courseRepo.FindByID(db, req.CourseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "enrollment", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !course.Active {
		return nil, apperrors.NewBadRequestError("Course is not open for enrollment")
	}

	if req.BatchID != "" {
		batch, err := s.courseRepo.FindBatchByID(db, req.BatchID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrBatchNotFound) {
				return nil, apperrors.ErrNotFound(err, "enrollment", "Batch not found")
			}
			return nil, apperrors.InternalError(err)
		}
		if batch.CourseID != course.ID {
			return nil, apperrors.NewBadRequestError("Batch does not belong to the selected course")
		}
	}

	enrollment := &models.Enrollment{
		CourseID: course.ID,
		BatchID:  req.BatchID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Status:   models.EnrollmentStatusPending,
	}
	if err := s.enrollmentRepo.Create(db, enrollment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "enrollment received", "enrollment_id", enrollment.ID, "course_id", course.ID)
	return enrollment, nil
}

func (s *EnrollmentServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Enrollment, error) {
	e, err := s.enrollmentRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrNotFound(err, "enrollment", "Enrollment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return e, nil
}

func (s *EnrollmentServiceImpl) List(ctx context.Context, db *gorm.DB, filter repositories.EnrollmentFilter) (*dto.EnrollmentListResponse, error) {
	if filter.Status != "" && !models.ValidEnrollmentStatus(filter.Status) {
		return nil, apperrors.ValidationError(map[string]string{
			"status": "must be one of: pending, confirmed, cancelled",
		})
	}

	items, total, err := s.enrollmentRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.EnrollmentListResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *EnrollmentServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	status := models.EnrollmentStatus(req.Status)
	if !models.ValidEnrollmentStatus(status) {
		return nil, apperrors.ValidationError(map[string]string{
			"status": "must be one of: pending, confirmed, cancelled",
		})
	}

	if err := s.enrollmentRepo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrNotFound(err, "enrollment", "Enrollment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(ctx, db, id)
}

func (s *EnrollmentServiceImpl) RequestSyllabus(ctx context.Context, db *gorm.DB, courseID string, req dto.SyllabusDownloadRequest) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(db, courseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrNotFound(err, "enrollment", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if course.Syllabus == "" {
		return nil, apperrors.ErrNotFound(nil, "enrollment", "No syllabus available for this course")
	}

	lead := &models.SyllabusRequest{
		CourseID: course.ID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.enrollmentRepo.CreateSyllabusRequest(db, lead); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "syllabus requested", "course_id", course.ID)
	return course, nil
}

func (s *EnrollmentServiceImpl) ListSyllabusRequests(ctx context.Context, db *gorm.DB, courseID string) ([]models.SyllabusRequest, error) {
	list, err := s.enrollmentRepo.FindSyllabusRequests(db, courseID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return list, nil
}
