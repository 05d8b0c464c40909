package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techvista_backend/internal/models"
	"techvista_backend/internal/pkg/email"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
)

func newEnquiryService() EnquiryService {
	return NewEnquiryService(repositories.NewEnquiryRepository(), email.NewConsoleSender(), "")
}

func TestEnquiryCreateDefaultsAndVerbatimData(t *testing.T) {
	db := newTestDB(t)
	svc := newEnquiryService()

	before := time.Now()
	enquiry, err := svc.Create(context.Background(), db, dto.CreateEnquiryRequest{
		Type:  "demo",
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Data: map[string]interface{}{
			"course": "web-development",
			"mode":   "online",
			"date":   "2025-01-10",
			"time":   "morning",
			"extra":  "untouched",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.EnquiryStatusNew, enquiry.Status)
	assert.False(t, enquiry.CreatedAt.Before(before.Add(-time.Second)))

	got, err := svc.GetByID(context.Background(), db, enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, "web-development", got.Data["course"])
	assert.Equal(t, "untouched", got.Data["extra"], "unknown keys must survive the round trip")
	assert.Len(t, got.Data, 5)
}

func TestEnquiryCreateRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := newEnquiryService()

	_, err := svc.Create(context.Background(), db, dto.CreateEnquiryRequest{
		Type:  "spam",
		Name:  "Jane",
		Email: "jane@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestEnquiryCreateRequiresTypeKeys(t *testing.T) {
	db := newTestDB(t)
	svc := newEnquiryService()

	_, err := svc.Create(context.Background(), db, dto.CreateEnquiryRequest{
		Type:  "project",
		Name:  "Jane",
		Email: "jane@example.com",
		Data: map[string]interface{}{
			"projectType": "web app",
			"budget":      "5000",
			// currency, timeline, description missing
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	// Consultation's message key is optional.
	_, err = svc.Create(context.Background(), db, dto.CreateEnquiryRequest{
		Type:  "consultation",
		Name:  "Jane",
		Email: "jane@example.com",
		Data: map[string]interface{}{
			"topic": "career switch",
			"date":  "2025-02-01",
			"time":  "evening",
		},
	})
	assert.NoError(t, err)
}

func TestEnquiryStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newEnquiryService()

	enquiry, err := svc.Create(context.Background(), db, dto.CreateEnquiryRequest{
		Type:  "contact",
		Name:  "Jane",
		Email: "jane@example.com",
		Data:  map[string]interface{}{"subject": "hi", "message": "hello"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), db, enquiry.ID, dto.UpdateEnquiryStatusRequest{Status: "read"})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusRead, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), db, enquiry.ID, dto.UpdateEnquiryStatusRequest{Status: "bogus"})
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestEnquiryDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newEnquiryService()

	err := svc.Delete(context.Background(), db, "does-not-exist")
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}
