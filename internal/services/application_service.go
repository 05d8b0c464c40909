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

type ApplicationService interface {
	Create(ctx context.Context, db *gorm.DB, req dto.CreateApplicationRequest, resume *multipart.FileHeader) (*models.InstructorApplication, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.InstructorApplication, error)
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.ApplicationListResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateApplicationStatusRequest) (*models.InstructorApplication, error)
}

type ApplicationServiceImpl struct {
	appRepo      repositories.ApplicationRepository
	store        storage.Storage
	resumePolicy UploadPolicy
}

func NewApplicationService(appRepo repositories.ApplicationRepository, store storage.Storage, resumePolicy UploadPolicy) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:      appRepo,
		store:        store,
		resumePolicy: resumePolicy,
	}
}

// Create validates and stores the resume before touching the database, so a
// rejected file never leaves a half-created application behind.
func (s *ApplicationServiceImpl) Create(ctx context.Context, db *gorm.DB, req dto.CreateApplicationRequest, resume *multipart.FileHeader) (*models.InstructorApplication, error) {
	if resume == nil {
		return nil, apperrors.ErrResumeRequired
	}

	key, err := storeUpload(ctx, s.store, "resumes", resume, s.resumePolicy)
	if err != nil {
		return nil, err
	}

	app := &models.InstructorApplication{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
		Resume:         key,
		LinkedIn:       req.LinkedIn,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove orphaned resume", delErr, "key", key)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "instructor application received", "application_id", app.ID)
	return app, nil
}

func (s *ApplicationServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.InstructorApplication, error) {
	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.ApplicationListResponse, error) {
	items, total, err := s.appRepo.FindAll(db, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ApplicationListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateApplicationStatusRequest) (*models.InstructorApplication, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ValidationError(map[string]string{
			"status": "must be one of: pending, reviewed, contacted, rejected",
		})
	}

	if err := s.appRepo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(ctx, db, id)
}
