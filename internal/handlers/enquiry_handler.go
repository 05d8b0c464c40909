package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/models"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services"
	"techvista_backend/internal/services/dto"
)

type EnquiryHandler struct {
	BaseHandler
	enquiryService services.EnquiryService
}

func NewEnquiryHandler(enquiryService services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

func (h *EnquiryHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/enquiries", h.Create)
}

func (h *EnquiryHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/enquiries", h.List)
	rg.GET("/enquiries/:id", h.GetByID)
	rg.PATCH("/enquiries/:id/status", h.UpdateStatus)
	rg.DELETE("/enquiries/:id", h.Delete)
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	enquiry, err := h.enquiryService.Create(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enquiry)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	filter := repositories.EnquiryFilter{
		Type:     models.EnquiryType(c.Query("type")),
		Status:   models.EnquiryStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.enquiryService.List(c.Request.Context(), h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EnquiryHandler) GetByID(c *gin.Context) {
	enquiry, err := h.enquiryService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enquiry)
}

func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateEnquiryStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	enquiry, err := h.enquiryService.UpdateStatus(c.Request.Context(), h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enquiry)
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.enquiryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enquiry deleted"})
}
