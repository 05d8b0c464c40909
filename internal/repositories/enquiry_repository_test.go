package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"techvista_backend/database"
	"techvista_backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestEnquiryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnquiryRepository()

	enquiry := &models.Enquiry{
		Type:   models.EnquiryTypeDemo,
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Status: models.EnquiryStatusNew,
		Data: datatypes.JSONMap{
			"course": "web-development",
			"mode":   "online",
			"date":   "2025-01-10",
			"time":   "morning",
			"extra":  "kept verbatim",
		},
	}
	require.NoError(t, repo.Create(db, enquiry))
	require.NotEmpty(t, enquiry.ID)

	got, err := repo.FindByID(db, enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusNew, got.Status)
	assert.Equal(t, "web-development", got.Data["course"])
	assert.Equal(t, "kept verbatim", got.Data["extra"])
}

func TestEnquiryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnquiryRepository()

	for i, name := range []string{"first", "second", "third"} {
		e := &models.Enquiry{
			Type:   models.EnquiryTypeContact,
			Name:   name,
			Email:  name + "@example.com",
			Status: models.EnquiryStatusNew,
		}
		require.NoError(t, repo.Create(db, e))
		// Space the timestamps out; sqlite stores them with enough
		// precision but insertion can be sub-millisecond.
		db.Model(e).Update("created_at", time.Now().Add(time.Duration(i)*time.Second))
	}

	items, total, err := repo.FindAll(db, EnquiryFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Name)
	assert.Equal(t, "first", items[2].Name)
}

func TestEnquiryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnquiryRepository()

	require.NoError(t, repo.Create(db, &models.Enquiry{Type: models.EnquiryTypeDemo, Name: "a", Email: "a@x.com", Status: models.EnquiryStatusNew}))
	require.NoError(t, repo.Create(db, &models.Enquiry{Type: models.EnquiryTypeContact, Name: "b", Email: "b@x.com", Status: models.EnquiryStatusArchived}))

	items, total, err := repo.FindAll(db, EnquiryFilter{Type: models.EnquiryTypeDemo, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "a", items[0].Name)

	items, total, err = repo.FindAll(db, EnquiryFilter{Status: models.EnquiryStatusArchived, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "b", items[0].Name)
}

func TestEnquiryUpdateStatusAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnquiryRepository()

	e := &models.Enquiry{Type: models.EnquiryTypeContact, Name: "a", Email: "a@x.com", Status: models.EnquiryStatusNew}
	require.NoError(t, repo.Create(db, e))

	require.NoError(t, repo.UpdateStatus(db, e.ID, models.EnquiryStatusRead))
	got, err := repo.FindByID(db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusRead, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(db, "no-such-id", models.EnquiryStatusRead), ErrEnquiryNotFound)

	require.NoError(t, repo.Delete(db, e.ID))
	_, err = repo.FindByID(db, e.ID)
	assert.ErrorIs(t, err, ErrEnquiryNotFound)
	assert.ErrorIs(t, repo.Delete(db, e.ID), ErrEnquiryNotFound)
}

func TestAdminOTPReplaceAndConsume(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository()

	admin := &models.Admin{Name: "Admin", Email: "admin@x.com", PasswordHash: "h", Role: models.AdminRoleAdmin}
	require.NoError(t, repo.Create(db, admin))

	first := &models.LoginOTP{AdminID: admin.ID, Code: "111111", ExpiresAt: time.Now().Add(5 * time.Minute)}
	require.NoError(t, repo.ReplaceOTP(db, first))

	// A second login replaces the pending code rather than stacking.
	second := &models.LoginOTP{AdminID: admin.ID, Code: "222222", ExpiresAt: time.Now().Add(5 * time.Minute)}
	require.NoError(t, repo.ReplaceOTP(db, second))

	otp, err := repo.FindOTP(db, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "222222", otp.Code)
	assert.Equal(t, 0, otp.Attempts)
	assert.False(t, otp.Consumed)

	require.NoError(t, repo.ConsumeOTP(db, otp.ID))
	// Second consumption must fail: single use.
	assert.ErrorIs(t, repo.ConsumeOTP(db, otp.ID), ErrOTPNotFound)
}
