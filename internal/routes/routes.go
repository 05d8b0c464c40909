package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"techvista_backend/internal/handlers"
	"techvista_backend/internal/middleware"
	"techvista_backend/internal/models"
	"techvista_backend/pkg/redisclient"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Enquiry     *handlers.EnquiryHandler
	Application *handlers.ApplicationHandler
	Catalog     *handlers.CatalogHandler
	Enrollment  *handlers.EnrollmentHandler
	Files       *handlers.FileHandler
}

// Register wires the middleware chain and mounts every route group.
func Register(r *gin.Engine, db *gorm.DB, redis *redisclient.Client, h Handlers) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())
	r.Use(middleware.DB(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Login and OTP verification carry a per-IP rate limit so the OTP
	// attempt cap cannot be brute-forced around by re-logging in.
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(redis, "auth", 10, time.Minute))
	h.Auth.RegisterPublicRoutes(authGroup)

	// Public site surface.
	h.Enquiry.RegisterPublicRoutes(api)
	h.Application.RegisterPublicRoutes(api)
	h.Catalog.RegisterPublicRoutes(api)
	h.Enrollment.RegisterPublicRoutes(api)
	h.Files.RegisterPublicRoutes(api)

	// Authenticated surface.
	protected := api.Group("")
	protected.Use(middleware.Auth(redis))

	h.Auth.RegisterProtectedRoutes(protected.Group("/auth"))

	roster := protected.Group("/auth")
	roster.Use(middleware.RequireRole(models.AdminRoleAdmin))
	h.Auth.RegisterRosterRoutes(roster)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(models.AdminRoleAdmin))
	h.Enquiry.RegisterAdminRoutes(admin)
	h.Application.RegisterAdminRoutes(admin)
	h.Catalog.RegisterAdminRoutes(admin)
	h.Enrollment.RegisterAdminRoutes(admin)
	h.Files.RegisterAdminRoutes(admin)
}
