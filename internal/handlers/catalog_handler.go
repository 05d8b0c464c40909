package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/services"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
)

type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterPublicRoutes exposes the read-only site content.
func (h *CatalogHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.ListCourses)
	rg.GET("/courses/:id", h.GetCourse)
	rg.GET("/courses/:id/batches", h.ListBatches)
	rg.GET("/testimonials", h.ListTestimonials)
	rg.GET("/gallery", h.ListGallery)
}

func (h *CatalogHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	// Same list endpoints, but with the authenticated session the
	// include_inactive/include_unpublished switches work.
	rg.GET("/courses", h.ListCourses)
	rg.GET("/courses/:id/batches", h.ListBatches)
	rg.GET("/testimonials", h.ListTestimonials)
	rg.GET("/gallery", h.ListGallery)

	rg.POST("/courses", h.CreateCourse)
	rg.PUT("/courses/:id", h.UpdateCourse)
	rg.DELETE("/courses/:id", h.DeleteCourse)
	rg.POST("/courses/:id/syllabus", h.UploadSyllabus)
	rg.POST("/courses/:id/batches", h.CreateBatch)
	rg.PUT("/batches/:id", h.UpdateBatch)
	rg.DELETE("/batches/:id", h.DeleteBatch)

	rg.POST("/testimonials", h.CreateTestimonial)
	rg.PUT("/testimonials/:id", h.UpdateTestimonial)
	rg.DELETE("/testimonials/:id", h.DeleteTestimonial)

	rg.POST("/gallery", h.UploadGalleryImage)
	rg.PUT("/gallery/:id", h.UpdateGalleryImage)
	rg.DELETE("/gallery/:id", h.DeleteGalleryImage)
}

// --- Courses ---

func (h *CatalogHandler) ListCourses(c *gin.Context) {
	// Admin sessions may ask for inactive courses too.
	activeOnly := c.Query("include_inactive") != "true" || h.GetClaims(c) == nil

	courses, err := h.catalogService.ListCourses(c.Request.Context(), h.GetDB(c), activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.catalogService.GetCourse(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	course, err := h.catalogService.CreateCourse(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	course, err := h.catalogService.UpdateCourse(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	if err := h.catalogService.DeleteCourse(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

func (h *CatalogHandler) UploadSyllabus(c *gin.Context) {
	file, err := c.FormFile("syllabus")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Syllabus file is required"))
		return
	}

	course, err := h.catalogService.UploadSyllabus(c.Request.Context(), h.GetDB(c), c.Param("id"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// --- Batches ---

func (h *CatalogHandler) ListBatches(c *gin.Context) {
	activeOnly := h.GetClaims(c) == nil || c.Query("include_inactive") != "true"

	batches, err := h.catalogService.ListBatches(c.Request.Context(), h.GetDB(c), c.Param("id"), activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *CatalogHandler) CreateBatch(c *gin.Context) {
	var req dto.BatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	batch, err := h.catalogService.CreateBatch(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func (h *CatalogHandler) UpdateBatch(c *gin.Context) {
	var req dto.BatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	batch, err := h.catalogService.UpdateBatch(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *CatalogHandler) DeleteBatch(c *gin.Context) {
	if err := h.catalogService.DeleteBatch(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Batch deleted"})
}

// --- Testimonials ---

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	publishedOnly := h.GetClaims(c) == nil || c.Query("include_unpublished") != "true"

	list, err := h.catalogService.ListTestimonials(c.Request.Context(), h.GetDB(c), publishedOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateTestimonial(c *gin.Context) {
	var req dto.TestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	t, err := h.catalogService.CreateTestimonial(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *CatalogHandler) UpdateTestimonial(c *gin.Context) {
	var req dto.TestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	t, err := h.catalogService.UpdateTestimonial(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.catalogService.DeleteTestimonial(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// --- Gallery ---

func (h *CatalogHandler) ListGallery(c *gin.Context) {
	publishedOnly := h.GetClaims(c) == nil || c.Query("include_unpublished") != "true"

	list, err := h.catalogService.ListGallery(c.Request.Context(), h.GetDB(c), c.Query("category"), publishedOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Image file is required"))
		return
	}

	req := dto.GalleryImageRequest{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
	}

	img, err := h.catalogService.UploadGalleryImage(c.Request.Context(), h.GetDB(c), req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *CatalogHandler) UpdateGalleryImage(c *gin.Context) {
	var req dto.GalleryImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	img, err := h.catalogService.UpdateGalleryImage(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *CatalogHandler) DeleteGalleryImage(c *gin.Context) {
	if err := h.catalogService.DeleteGalleryImage(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted"})
}
