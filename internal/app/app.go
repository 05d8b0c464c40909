package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"techvista_backend/database"
	"techvista_backend/internal/auth"
	"techvista_backend/internal/config"
	"techvista_backend/internal/handlers"
	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/internal/pkg/email"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/routes"
	"techvista_backend/internal/services"
	"techvista_backend/internal/storage"
	"techvista_backend/pkg/redisclient"
)

// Run boots the whole application: config, database, dependencies, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	auth.Configure(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTTTLMinutes)*time.Minute)

	redis := connectRedis(cfg)

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	sender := buildSender(cfg)

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.Register(router, db, redis, buildHandlers(cfg, store, sender, redis))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// buildHandlers assembles the dependency graph: repositories into services
// into handlers.
func buildHandlers(cfg *config.Config, store storage.Storage, sender email.Sender, redis *redisclient.Client) routes.Handlers {
	adminRepo := repositories.NewAdminRepository()
	enquiryRepo := repositories.NewEnquiryRepository()
	appRepo := repositories.NewApplicationRepository()
	courseRepo := repositories.NewCourseRepository()
	testimonialRepo := repositories.NewTestimonialRepository()
	galleryRepo := repositories.NewGalleryRepository()
	enrollmentRepo := repositories.NewEnrollmentRepository()

	imagePolicy := services.UploadPolicy{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}
	documentPolicy := services.UploadPolicy{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.ResumeTypes,
	}

	authService := services.NewAuthService(adminRepo, sender, redis, services.AuthServiceConfig{
		OTPTTL:         time.Duration(cfg.Auth.OTPTTLMinutes) * time.Minute,
		OTPMaxAttempts: cfg.Auth.OTPMaxAttempt,
		AdminLimit:     cfg.Auth.AdminLimit,
		DebugOTP:       cfg.Auth.DebugOTP,
	})
	enquiryService := services.NewEnquiryService(enquiryRepo, sender, cfg.Auth.FirstAdminEmail)
	applicationService := services.NewApplicationService(appRepo, store, documentPolicy)
	catalogService := services.NewCatalogService(courseRepo, testimonialRepo, galleryRepo, store, imagePolicy, documentPolicy)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, courseRepo)

	return routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Enquiry:     handlers.NewEnquiryHandler(enquiryService),
		Application: handlers.NewApplicationHandler(applicationService),
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Enrollment:  handlers.NewEnrollmentHandler(enrollmentService, store),
		Files:       handlers.NewFileHandler(store),
	}
}

func connectRedis(cfg *config.Config) *redisclient.Client {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis not configured, logout blacklist and rate limits disabled")
		return nil
	}
	client, err := redisclient.NewClient(redisclient.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error("redis unavailable, continuing without it", "error", err)
		return nil
	}
	return client
}

func buildSender(cfg *config.Config) email.Sender {
	if cfg.Email.Provider == "smtp" && cfg.Email.SMTPHost != "" {
		return email.NewSMTPSender(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
	}
	return email.NewConsoleSender()
}

// seedFirstAdmin guarantees the roster is reachable on a fresh database.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Auth.FirstAdminEmail == "" || cfg.Auth.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Auth.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		Name:         "Administrator",
		Email:        cfg.Auth.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.AdminRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("seeded first admin", "email", admin.Email)
	return nil
}
