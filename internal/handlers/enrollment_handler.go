package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/models"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services"
	"techvista_backend/internal/services/dto"
)

type EnrollmentHandler struct {
	BaseHandler
	enrollmentService services.EnrollmentService
	store             URLResolver
}

// URLResolver turns a storage key into a client-facing URL.
type URLResolver interface {
	GetURL(key string) string
}

func NewEnrollmentHandler(enrollmentService services.EnrollmentService, store URLResolver) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService, store: store}
}

func (h *EnrollmentHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/enrollments", h.Create)
	rg.POST("/courses/:id/syllabus-download", h.RequestSyllabus)
}

func (h *EnrollmentHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/enrollments", h.List)
	rg.GET("/enrollments/:id", h.GetByID)
	rg.PATCH("/enrollments/:id/status", h.UpdateStatus)
	rg.GET("/syllabus-requests", h.ListSyllabusRequests)
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollmentService.Create(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	filter := repositories.EnrollmentFilter{
		CourseID: c.Query("course_id"),
		Status:   models.EnrollmentStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.enrollmentService.List(c.Request.Context(), h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EnrollmentHandler) GetByID(c *gin.Context) {
	enrollment, err := h.enrollmentService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateEnrollmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollmentService.UpdateStatus(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// RequestSyllabus captures the visitor's details and answers with the
// syllabus download URL.
func (h *EnrollmentHandler) RequestSyllabus(c *gin.Context) {
	var req dto.SyllabusDownloadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	course, err := h.enrollmentService.RequestSyllabus(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"syllabusUrl": h.store.GetURL(course.Syllabus)})
}

func (h *EnrollmentHandler) ListSyllabusRequests(c *gin.Context) {
	list, err := h.enrollmentService.ListSyllabusRequests(c.Request.Context(), h.GetDB(c), c.Query("course_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
