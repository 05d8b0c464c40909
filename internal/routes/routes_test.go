package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"techvista_backend/database"
	"techvista_backend/internal/auth"
	"techvista_backend/internal/handlers"
	"techvista_backend/internal/models"
	"techvista_backend/internal/pkg/email"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services"
	"techvista_backend/internal/storage"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Configure("test-secret", time.Hour)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store, err := storage.NewLocalStorage(t.TempDir(), "/api/files")
	require.NoError(t, err)
	sender := email.NewConsoleSender()

	imagePolicy := services.UploadPolicy{MaxSize: 1 << 20, AllowedTypes: []string{"image/png", "image/jpeg"}}
	docPolicy := services.UploadPolicy{MaxSize: 1 << 20, AllowedTypes: []string{"application/pdf"}}

	adminRepo := repositories.NewAdminRepository()
	courseRepo := repositories.NewCourseRepository()

	authService := services.NewAuthService(adminRepo, sender, nil, services.AuthServiceConfig{DebugOTP: true})
	enquiryService := services.NewEnquiryService(repositories.NewEnquiryRepository(), sender, "")
	applicationService := services.NewApplicationService(repositories.NewApplicationRepository(), store, docPolicy)
	catalogService := services.NewCatalogService(courseRepo, repositories.NewTestimonialRepository(), repositories.NewGalleryRepository(), store, imagePolicy, docPolicy)
	enrollmentService := services.NewEnrollmentService(repositories.NewEnrollmentRepository(), courseRepo)

	router := gin.New()
	Register(router, db, nil, Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Enquiry:     handlers.NewEnquiryHandler(enquiryService),
		Application: handlers.NewApplicationHandler(applicationService),
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Enrollment:  handlers.NewEnrollmentHandler(enrollmentService, store),
		Files:       handlers.NewFileHandler(store),
	})

	return &testApp{router: router, db: db}
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) seedAdmin(t *testing.T, emailAddr, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, a.db.Create(&models.Admin{
		Name: "Admin", Email: emailAddr, PasswordHash: hash, Role: models.AdminRoleAdmin,
	}).Error)
}

// loginAs walks the full two-step flow and returns a bearer token.
func (a *testApp) loginAs(t *testing.T, emailAddr, password string) string {
	t.Helper()
	w := a.request(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": emailAddr, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginResp struct {
		DebugOTP string `json:"debugOtp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.DebugOTP)

	w = a.request(t, http.MethodPost, "/api/auth/verify-otp", "", gin.H{"email": emailAddr, "otp": loginResp.DebugOTP})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.Token)
	return tokenResp.Token
}

func TestEnquiryScenarioDemoBooking(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/enquiries", "", gin.H{
		"type":  "demo",
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"data": gin.H{
			"course": "web-development",
			"mode":   "online",
			"date":   "2025-01-10",
			"time":   "morning",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Enquiry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.EnquiryStatusNew, created.Status)
	assert.Len(t, created.Data, 4, "data stored verbatim with all four keys")
	assert.Equal(t, "web-development", created.Data["course"])
}

func TestEnquiryValidationFailure(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/enquiries", "", gin.H{
		"type": "demo",
		"name": "Jane Doe",
		// email missing
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/admin/enquiries",
		"/api/admin/instructor-applications",
		"/api/admin/enrollments",
	} {
		w := app.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := app.request(t, http.MethodGet, "/api/admin/enquiries", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFullAuthFlowAndEnquiryTriage(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")

	// Create a lead while logged out.
	w := app.request(t, http.MethodPost, "/api/enquiries", "", gin.H{
		"type":  "contact",
		"name":  "Visitor",
		"email": "visitor@x.com",
		"data":  gin.H{"subject": "Pricing", "message": "How much?"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	token := app.loginAs(t, "admin@x.com", "admin-pass")

	// Session is live.
	w = app.request(t, http.MethodGet, "/api/auth/verify", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Triage the lead.
	w = app.request(t, http.MethodGet, "/api/admin/enquiries", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Items []models.Enquiry `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, int64(1), list.Total)

	enquiryID := list.Items[0].ID
	w = app.request(t, http.MethodPatch, fmt.Sprintf("/api/admin/enquiries/%s/status", enquiryID), token, gin.H{"status": "read"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodDelete, "/api/admin/enquiries/"+enquiryID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is a 404, not a silent success.
	w = app.request(t, http.MethodDelete, "/api/admin/enquiries/"+enquiryID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOTPReplayRejectedOverHTTP(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")

	w := app.request(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@x.com", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		DebugOTP string `json:"debugOtp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))

	w = app.request(t, http.MethodPost, "/api/auth/verify-otp", "", gin.H{"email": "admin@x.com", "otp": loginResp.DebugOTP})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodPost, "/api/auth/verify-otp", "", gin.H{"email": "admin@x.com", "otp": loginResp.DebugOTP})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInstructorApplicationWithoutResume(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name":           "John Teacher",
		"email":          "john@example.com",
		"phone":          "5551234567",
		"experience":     "5 years",
		"qualifications": "MSc",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/instructor-applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.InstructorApplication{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestInstructorApplicationQualificationsTooLong(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name":           "John Teacher",
		"email":          "john@example.com",
		"phone":          "5551234567",
		"experience":     "5 years",
		"qualifications": strings.Repeat("q", 1001),
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/instructor-applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "qualifications")
}

func TestCourseAndEnrollmentFlow(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")
	token := app.loginAs(t, "admin@x.com", "admin-pass")

	w := app.request(t, http.MethodPost, "/api/admin/courses", token, gin.H{
		"title": "Go Backend Engineering",
		"slug":  "go-backend",
		"price": 499.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var course models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))

	// Duplicate slug conflicts.
	w = app.request(t, http.MethodPost, "/api/admin/courses", token, gin.H{
		"title": "Another", "slug": "go-backend",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Public catalog shows it.
	w = app.request(t, http.MethodGet, "/api/courses/go-backend", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A visitor enrolls.
	w = app.request(t, http.MethodPost, "/api/enrollments", "", gin.H{
		"courseId": course.ID,
		"name":     "Student One",
		"email":    "student@x.com",
		"phone":    "5550001111",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollment))
	assert.Equal(t, models.EnrollmentStatusPending, enrollment.Status)

	// Admin confirms.
	w = app.request(t, http.MethodPatch, "/api/admin/enrollments/"+enrollment.ID+"/status", token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown course rejects enrollment before any write.
	w = app.request(t, http.MethodPost, "/api/enrollments", "", gin.H{
		"courseId": "11111111-1111-4111-8111-111111111111",
		"name":     "Student Two",
		"email":    "two@x.com",
		"phone":    "5550002222",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonAdminRoleForbidden(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")

	// A valid session whose role is not admin: authentication passes,
	// authorization does not.
	token, err := auth.GenerateToken("some-id", "viewer")
	require.NoError(t, err)

	w := app.request(t, http.MethodGet, "/api/admin/enquiries", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRosterRequiresAdminRole(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")

	viewerToken, err := auth.GenerateToken("some-id", "viewer")
	require.NoError(t, err)

	// A valid non-admin session can neither read nor grow the roster.
	w := app.request(t, http.MethodGet, "/api/auth/admins", viewerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.request(t, http.MethodPost, "/api/auth/admins", viewerToken, gin.H{
		"name": "Intruder", "email": "intruder@x.com", "password": "intruder-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "the roster must not grow")

	// An admin session still manages the roster.
	adminToken := app.loginAs(t, "admin@x.com", "admin-pass")
	w = app.request(t, http.MethodPost, "/api/auth/admins", adminToken, gin.H{
		"name": "Second", "email": "second@x.com", "password": "second-pass",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.request(t, http.MethodGet, "/api/auth/admins", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutWithoutRedisStillSucceeds(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin@x.com", "admin-pass")
	token := app.loginAs(t, "admin@x.com", "admin-pass")

	w := app.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	w := app.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
