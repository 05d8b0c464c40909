package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
	"techvista_backend/internal/storage"
)

func newCatalogFixture(t *testing.T) (CatalogService, EnrollmentService) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "/api/files")
	require.NoError(t, err)

	courseRepo := repositories.NewCourseRepository()
	catalog := NewCatalogService(
		courseRepo,
		repositories.NewTestimonialRepository(),
		repositories.NewGalleryRepository(),
		store,
		UploadPolicy{MaxSize: 1 << 20, AllowedTypes: []string{"image/png"}},
		UploadPolicy{MaxSize: 1 << 20, AllowedTypes: []string{"application/pdf"}},
	)
	enrollment := NewEnrollmentService(repositories.NewEnrollmentRepository(), courseRepo)
	return catalog, enrollment
}

func TestCourseSlugConflict(t *testing.T) {
	db := newTestDB(t)
	catalog, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "Go", Slug: "go"})
	require.NoError(t, err)

	_, err = catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "Go Again", Slug: "go"})
	assert.Equal(t, http.StatusConflict, httpCode(t, err))
}

func TestCourseLookupByIDOrSlug(t *testing.T) {
	db := newTestDB(t)
	catalog, _ := newCatalogFixture(t)
	ctx := context.Background()

	created, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "Go", Slug: "go"})
	require.NoError(t, err)

	byID, err := catalog.GetCourse(ctx, db, created.ID)
	require.NoError(t, err)
	bySlug, err := catalog.GetCourse(ctx, db, "go")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, bySlug.ID)

	_, err = catalog.GetCourse(ctx, db, "missing")
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestEnrollmentBatchMustBelongToCourse(t *testing.T) {
	db := newTestDB(t)
	catalog, enrollment := newCatalogFixture(t)
	ctx := context.Background()

	courseA, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "A", Slug: "a"})
	require.NoError(t, err)
	courseB, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "B", Slug: "b"})
	require.NoError(t, err)

	batchB, err := catalog.CreateBatch(ctx, db, courseB.ID, dto.BatchRequest{
		Name: "Evening", StartDate: time.Now().Add(24 * time.Hour), Mode: "online",
	})
	require.NoError(t, err)

	_, err = enrollment.Create(ctx, db, dto.CreateEnrollmentRequest{
		CourseID: courseA.ID,
		BatchID:  batchB.ID,
		Name:     "Student",
		Email:    "s@x.com",
		Phone:    "5550001111",
	})
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = enrollment.Create(ctx, db, dto.CreateEnrollmentRequest{
		CourseID: courseB.ID,
		BatchID:  batchB.ID,
		Name:     "Student",
		Email:    "s@x.com",
		Phone:    "5550001111",
	})
	assert.NoError(t, err)
}

func TestEnrollmentClosedCourse(t *testing.T) {
	db := newTestDB(t)
	catalog, enrollment := newCatalogFixture(t)
	ctx := context.Background()

	inactive := false
	course, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "Old", Slug: "old", Active: &inactive})
	require.NoError(t, err)

	_, err = enrollment.Create(ctx, db, dto.CreateEnrollmentRequest{
		CourseID: course.ID,
		Name:     "Student",
		Email:    "s@x.com",
		Phone:    "5550001111",
	})
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestSyllabusRequestWithoutSyllabus(t *testing.T) {
	db := newTestDB(t)
	catalog, enrollment := newCatalogFixture(t)
	ctx := context.Background()

	course, err := catalog.CreateCourse(ctx, db, dto.CourseRequest{Title: "Go", Slug: "go"})
	require.NoError(t, err)

	_, err = enrollment.RequestSyllabus(ctx, db, course.ID, dto.SyllabusDownloadRequest{
		Name: "Visitor", Email: "v@x.com",
	})
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	// No lead is captured for a dead download.
	leads, err := enrollment.ListSyllabusRequests(ctx, db, course.ID)
	require.NoError(t, err)
	assert.Empty(t, leads)
}
