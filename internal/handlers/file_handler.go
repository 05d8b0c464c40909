package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/storage"
	"techvista_backend/pkg/apperrors"
)

// FileHandler streams stored uploads back to clients. Public for gallery
// images and syllabi; resumes sit behind the admin group.
type FileHandler struct {
	BaseHandler
	store storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/gallery/:name", h.serve("gallery"))
	rg.GET("/files/syllabi/:name", h.serve("syllabi"))
}

func (h *FileHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/resumes/:name", h.serve("resumes"))
}

func (h *FileHandler) serve(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + "/" + filepath.Base(c.Param("name"))

		f, err := h.store.Get(c.Request.Context(), key)
		if err != nil {
			if apperrors.Is(err, storage.ErrFileNotFound) {
				apperrors.HandleError(c, apperrors.ErrNotFound(err, "files", "File not found"))
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}
		defer f.Close()

		contentType := mime.TypeByExtension(filepath.Ext(key))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)
		io.Copy(c.Writer, f)
	}
}
