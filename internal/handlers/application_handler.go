package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/services"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/instructor-applications", h.Create)
}

func (h *ApplicationHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/instructor-applications", h.List)
	rg.GET("/instructor-applications/:id", h.GetByID)
	rg.PATCH("/instructor-applications/:id/status", h.UpdateStatus)
}

// Create accepts a multipart form: text fields plus a required "resume"
// file part.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrResumeRequired)
		return
	}

	app, err := h.applicationService.Create(c.Request.Context(), h.GetDB(c), req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	resp, err := h.applicationService.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.applicationService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
