package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/internal/pkg/email"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
)

// requiredEnquiryData maps each enquiry type to the keys its payload must
// carry. Extra keys are always allowed and stored verbatim.
var requiredEnquiryData = map[models.EnquiryType][]string{
	models.EnquiryTypeContact:      {"subject", "message"},
	models.EnquiryTypeProject:      {"projectType", "budget", "currency", "timeline", "description"},
	models.EnquiryTypeDemo:         {"course", "mode", "date", "time"},
	models.EnquiryTypeConsultation: {"topic", "date", "time"},
}

type EnquiryService interface {
	Create(ctx context.Context, db *gorm.DB, req dto.CreateEnquiryRequest) (*models.Enquiry, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Enquiry, error)
	List(ctx context.Context, db *gorm.DB, filter repositories.EnquiryFilter) (*dto.EnquiryListResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateEnquiryStatusRequest) (*models.Enquiry, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type EnquiryServiceImpl struct {
	enquiryRepo repositories.EnquiryRepository
	sender      email.Sender
	notifyTo    string
}

func NewEnquiryService(enquiryRepo repositories.EnquiryRepository, sender email.Sender, notifyTo string) EnquiryService {
	return &EnquiryServiceImpl{
		enquiryRepo: enquiryRepo,
		sender:      sender,
		notifyTo:    notifyTo,
	}
}

// Create validates the variant payload against its type and persists the map
// exactly as submitted, extra keys included.
func (s *EnquiryServiceImpl) Create(ctx context.Context, db *gorm.DB, req dto.CreateEnquiryRequest) (*models.Enquiry, error) {
	enquiryType := models.EnquiryType(req.Type)
	if !models.ValidEnquiryType(enquiryType) {
		return nil, apperrors.ErrInvalidEnquiryType
	}

	if missing := missingDataKeys(enquiryType, req.Data); len(missing) > 0 {
		return nil, apperrors.ValidationError(map[string]string{
			"data": fmt.Sprintf("missing required keys for type %q: %s", req.Type, strings.Join(missing, ", ")),
		})
	}

	enquiry := &models.Enquiry{
		Type:   enquiryType,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: models.EnquiryStatusNew,
		Data:   req.Data,
	}
	if err := s.enquiryRepo.Create(db, enquiry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "enquiry created", "enquiry_id", enquiry.ID, "type", enquiry.Type)

	if s.notifyTo != "" {
		s.notifyAsync(ctx, email.EnquiryNotification(s.notifyTo, string(enquiry.Type), enquiry.Name, enquiry.Email))
	}
	return enquiry, nil
}

func (s *EnquiryServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Enquiry, error) {
	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, apperrors.ErrNotFound(err, "enquiry", "Enquiry not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return enquiry, nil
}

func (s *EnquiryServiceImpl) List(ctx context.Context, db *gorm.DB, filter repositories.EnquiryFilter) (*dto.EnquiryListResponse, error) {
	if filter.Type != "" && !models.ValidEnquiryType(filter.Type) {
		return nil, apperrors.ErrInvalidEnquiryType
	}
	if filter.Status != "" && !models.ValidEnquiryStatus(filter.Status) {
		return nil, apperrors.ErrInvalidEnquiryStatus
	}

	items, total, err := s.enquiryRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.EnquiryListResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *EnquiryServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, id string, req dto.UpdateEnquiryStatusRequest) (*models.Enquiry, error) {
	status := models.EnquiryStatus(req.Status)
	if !models.ValidEnquiryStatus(status) {
		return nil, apperrors.ErrInvalidEnquiryStatus
	}

	if err := s.enquiryRepo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, apperrors.ErrNotFound(err, "enquiry", "Enquiry not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(ctx, db, id)
}

func (s *EnquiryServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.enquiryRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrEnquiryNotFound) {
			return apperrors.ErrNotFound(err, "enquiry", "Enquiry not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "enquiry deleted", "enquiry_id", id)
	return nil
}

// missingDataKeys returns the required keys absent or empty for the type.
func missingDataKeys(t models.EnquiryType, data map[string]interface{}) []string {
	var missing []string
	for _, key := range requiredEnquiryData[t] {
		v, ok := data[key]
		if !ok || v == nil {
			missing = append(missing, key)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func (s *EnquiryServiceImpl) notifyAsync(ctx context.Context, msg email.Message) {
	requestID := logger.GetRequestID(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if requestID != "" {
			sendCtx = logger.WithRequestID(sendCtx, requestID)
		}
		if err := s.sender.Send(sendCtx, msg); err != nil {
			logger.CtxWithError(sendCtx, "enquiry notification failed", err, "to", msg.To)
		}
	}()
}
