package services

import (
	"context"
	"crypto/subtle"
	"time"

	"gorm.io/gorm"

	"techvista_backend/internal/auth"
	"techvista_backend/internal/logger"
	"techvista_backend/internal/models"
	"techvista_backend/internal/pkg/email"
	"techvista_backend/internal/repositories"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
	"techvista_backend/pkg/redisclient"
)

type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyOTP(ctx context.Context, db *gorm.DB, req dto.VerifyOTPRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error

	GetProfile(ctx context.Context, db *gorm.DB, adminID string) (*dto.AdminResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, adminID string, req dto.UpdateProfileRequest) (*dto.AdminResponse, error)
	ChangePassword(ctx context.Context, db *gorm.DB, adminID string, req dto.ChangePasswordRequest) error

	CreateAdmin(ctx context.Context, db *gorm.DB, req dto.CreateAdminRequest) (*dto.AdminResponse, error)
	ListAdmins(ctx context.Context, db *gorm.DB) ([]dto.AdminResponse, error)

	ForgotPassword(ctx context.Context, db *gorm.DB, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, db *gorm.DB, req dto.ResetPasswordRequest) error
}

const minPasswordLength = 6

type AuthServiceConfig struct {
	OTPTTL         time.Duration
	OTPMaxAttempts int
	AdminLimit     int
	DebugOTP       bool
}

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
	sender    email.Sender
	redis     *redisclient.Client
	cfg       AuthServiceConfig
}

func NewAuthService(adminRepo repositories.AdminRepository, sender email.Sender, redis *redisclient.Client, cfg AuthServiceConfig) AuthService {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.OTPMaxAttempts <= 0 {
		cfg.OTPMaxAttempts = 5
	}
	if cfg.AdminLimit <= 0 {
		cfg.AdminLimit = 10
	}
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		sender:    sender,
		redis:     redis,
		cfg:       cfg,
	}
}

// Login checks the first factor and issues a fresh OTP. Issuing replaces any
// previous pending code for the admin, so retried logins invalidate older
// codes instead of stacking them.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	otp := &models.LoginOTP{
		AdminID:   admin.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.cfg.OTPTTL),
	}
	if err := s.adminRepo.ReplaceOTP(db, otp); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendAsync(ctx, email.OTPMessage(admin.Email, admin.Name, code, int(s.cfg.OTPTTL.Minutes())))

	logger.CtxInfo(ctx, "otp issued", "admin_id", admin.ID)

	resp := &dto.LoginResponse{Message: "Verification code sent to your email"}
	if s.cfg.DebugOTP {
		resp.DebugOTP = code
	}
	return resp, nil
}

// VerifyOTP checks the second factor and mints a session token. The code is
// single use: consumption happens with a guard so a replay of the same code
// cannot win twice.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, db *gorm.DB, req dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	otp, err := s.adminRepo.FindOTP(db, admin.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	if otp.Consumed || time.Now().After(otp.ExpiresAt) {
		return nil, apperrors.ErrInvalidOTP
	}
	if otp.Attempts >= s.cfg.OTPMaxAttempts {
		return nil, apperrors.ErrOTPAttemptsExceeded
	}

	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(req.Code)) != 1 {
		if err := s.adminRepo.IncrementOTPAttempts(db, otp.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		if otp.Attempts+1 >= s.cfg.OTPMaxAttempts {
			return nil, apperrors.ErrOTPAttemptsExceeded
		}
		return nil, apperrors.ErrInvalidOTP
	}

	if err := s.adminRepo.ConsumeOTP(db, otp.ID); err != nil {
		if apperrors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin logged in", "admin_id", admin.ID)

	return &dto.TokenResponse{
		Token: token,
		Admin: toAdminResponse(admin),
	}, nil
}

// Logout blacklists the token's JTI until its natural expiry. Without redis
// logout is a client-side discard only.
func (s *AuthServiceImpl) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		logger.CtxWithError(ctx, "failed to blacklist token", err, "admin_id", claims.AdminID)
	}
	return nil
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, db *gorm.DB, adminID string) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.FindByID(db, adminID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "Admin not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, adminID string, req dto.UpdateProfileRequest) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.FindByID(db, adminID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "Admin not found")
		}
		return nil, apperrors.InternalError(err)
	}

	admin.Name = req.Name
	admin.Mobile = req.Mobile
	if err := s.adminRepo.Update(db, admin); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, db *gorm.DB, adminID string, req dto.ChangePasswordRequest) error {
	admin, err := s.adminRepo.FindByID(db, adminID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return apperrors.ErrNotFound(err, "auth", "Admin not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, admin.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.adminRepo.UpdatePassword(db, admin.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password changed", "admin_id", admin.ID)
	return nil
}

// CreateAdmin adds a member to the roster. The capacity check and the
// duplicate-email check both answer 409 with distinct codes.
func (s *AuthServiceImpl) CreateAdmin(ctx context.Context, db *gorm.DB, req dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	count, err := s.adminRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= int64(s.cfg.AdminLimit) {
		return nil, apperrors.ErrAdminLimitReached
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.AdminRoleAdmin,
		Mobile:       req.Mobile,
	}
	if err := s.adminRepo.Create(db, admin); err != nil {
		if apperrors.Is(err, repositories.ErrAdminAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin created", "admin_id", admin.ID, "email", admin.Email)

	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *AuthServiceImpl) ListAdmins(ctx context.Context, db *gorm.DB) ([]dto.AdminResponse, error) {
	admins, err := s.adminRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminResponse(&admins[i]))
	}
	return out, nil
}

// ForgotPassword issues a reset token. The response is identical whether or
// not the email exists, so the endpoint cannot be used to probe the roster.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, db *gorm.DB, req dto.ForgotPasswordRequest) error {
	admin, err := s.adminRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(1 * time.Hour)
	admin.ResetToken = token
	admin.ResetTokenExp = &exp
	if err := s.adminRepo.Update(db, admin); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendAsync(ctx, email.PasswordResetMessage(admin.Email, admin.Name, token))

	logger.CtxInfo(ctx, "password reset requested", "admin_id", admin.ID)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, db *gorm.DB, req dto.ResetPasswordRequest) error {
	admin, err := s.adminRepo.FindByResetToken(db, req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if len(req.NewPassword) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	// UpdatePassword clears the reset token, so a token is good for exactly
	// one reset.
	if err := s.adminRepo.UpdatePassword(db, admin.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset completed", "admin_id", admin.ID)
	return nil
}

// sendAsync delivers mail without blocking the request. Delivery failures
// are logged, never surfaced to the caller.
func (s *AuthServiceImpl) sendAsync(ctx context.Context, msg email.Message) {
	requestID := logger.GetRequestID(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if requestID != "" {
			sendCtx = logger.WithRequestID(sendCtx, requestID)
		}
		if err := s.sender.Send(sendCtx, msg); err != nil {
			logger.CtxWithError(sendCtx, "email delivery failed", err, "to", msg.To)
		}
	}()
}

func toAdminResponse(a *models.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		Mobile:    a.Mobile,
		CreatedAt: a.CreatedAt,
	}
}
