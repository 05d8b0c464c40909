package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"techvista_backend/internal/auth"
	"techvista_backend/internal/validator"
	"techvista_backend/pkg/apperrors"
	"techvista_backend/pkg/contextkeys"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	claimsKey = "auth_claims"
)

// BaseHandler carries the request plumbing shared by every handler: database
// handle lookup, bind+validate, pagination and error rendering.
type BaseHandler struct{}

// GetDB pulls the request-scoped database handle injected by the DB
// middleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// BindAndValidateJSON binds the JSON body into req and validates it. On
// failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if fields := validator.Struct(req); fields != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fields))
		return false
	}
	return true
}

// BindAndValidateForm binds multipart/urlencoded form fields into req and
// validates them.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	if fields := validator.Struct(req); fields != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fields))
		return false
	}
	return true
}

// HandleServiceError renders a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// ParsePagination reads page/page_size query params with sane bounds.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// GetClaims returns the token claims stored by the auth middleware.
func (h *BaseHandler) GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// SetClaims is used by the auth middleware after token verification.
func SetClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}
