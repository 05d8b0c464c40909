package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"techvista_backend/internal/models"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrOTPNotFound        = errors.New("otp not found")
)

type AdminRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*models.Admin, error)
	FindByResetToken(db *gorm.DB, token string) (*models.Admin, error)
	FindAll(db *gorm.DB) ([]models.Admin, error)
	Count(db *gorm.DB) (int64, error)
	Create(db *gorm.DB, admin *models.Admin) error
	Update(db *gorm.DB, admin *models.Admin) error
	UpdatePassword(db *gorm.DB, adminID, passwordHash string) error

	// OTP operations. ReplaceOTP upserts on admin_id so only the most
	// recently issued code is ever live.
	ReplaceOTP(db *gorm.DB, otp *models.LoginOTP) error
	FindOTP(db *gorm.DB, adminID string) (*models.LoginOTP, error)
	IncrementOTPAttempts(db *gorm.DB, otpID string) error
	ConsumeOTP(db *gorm.DB, otpID string) error
}

type AdminRepositoryImpl struct{}

func NewAdminRepository() AdminRepository {
	return &AdminRepositoryImpl{}
}

func (r *AdminRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Admin, error) {
	var admin models.Admin
	err := db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	err := db.First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByResetToken(db *gorm.DB, token string) (*models.Admin, error) {
	var admin models.Admin
	err := db.Where("reset_token = ? AND reset_token != '' AND reset_token_exp > ?", token, time.Now()).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindAll(db *gorm.DB) ([]models.Admin, error) {
	var admins []models.Admin
	err := db.Order("created_at ASC").Find(&admins).Error
	return admins, err
}

func (r *AdminRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}

func (r *AdminRepositoryImpl) Create(db *gorm.DB, admin *models.Admin) error {
	var existing models.Admin
	if err := db.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		return ErrAdminAlreadyExists
	}
	return db.Create(admin).Error
}

func (r *AdminRepositoryImpl) Update(db *gorm.DB, admin *models.Admin) error {
	result := db.Model(admin).Updates(map[string]interface{}{
		"name":            admin.Name,
		"mobile":          admin.Mobile,
		"reset_token":     admin.ResetToken,
		"reset_token_exp": admin.ResetTokenExp,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryImpl) UpdatePassword(db *gorm.DB, adminID, passwordHash string) error {
	result := db.Model(&models.Admin{}).Where("id = ?", adminID).Updates(map[string]interface{}{
		"password_hash":   passwordHash,
		"reset_token":     "",
		"reset_token_exp": nil,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryImpl) ReplaceOTP(db *gorm.DB, otp *models.LoginOTP) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"code":       otp.Code,
			"expires_at": otp.ExpiresAt,
			"attempts":   0,
			"consumed":   false,
			"updated_at": time.Now(),
		}),
	}).Create(otp).Error
}

func (r *AdminRepositoryImpl) FindOTP(db *gorm.DB, adminID string) (*models.LoginOTP, error) {
	var otp models.LoginOTP
	err := db.First(&otp, "admin_id = ?", adminID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *AdminRepositoryImpl) IncrementOTPAttempts(db *gorm.DB, otpID string) error {
	return db.Model(&models.LoginOTP{}).Where("id = ?", otpID).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}

func (r *AdminRepositoryImpl) ConsumeOTP(db *gorm.DB, otpID string) error {
	// The consumed guard makes consumption atomic: two concurrent verifies
	// with the same code cannot both succeed.
	result := db.Model(&models.LoginOTP{}).
		Where("id = ? AND consumed = ?", otpID, false).
		Update("consumed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOTPNotFound
	}
	return nil
}
