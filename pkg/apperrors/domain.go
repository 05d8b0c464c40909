package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth flow ---

// ErrInvalidCredentials deliberately does not distinguish an unknown email
// from a wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidOTP covers mismatch, expiry and already-consumed codes alike.
var ErrInvalidOTP = New(
	CodeInvalidOTP,
	"auth",
	"Invalid or expired verification code",
	http.StatusUnauthorized,
)

// ErrOTPAttemptsExceeded fires once the attempt cap for the current code is
// reached; the admin must log in again to get a fresh code.
var ErrOTPAttemptsExceeded = New(
	CodeLimitExceeded,
	"auth",
	"Too many incorrect attempts. Please log in again to receive a new code.",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// --- Admin roster ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrAdminLimitReached = New(
	CodeLimitExceeded,
	"auth",
	"Admin roster is at capacity",
	http.StatusConflict,
)

// --- Lead intake ---

var ErrResumeRequired = New(
	CodeValidationFailed,
	"application",
	"Resume file is required",
	http.StatusBadRequest,
)

var ErrInvalidEnquiryType = New(
	CodeValidationFailed,
	"enquiry",
	"Unknown enquiry type",
	http.StatusBadRequest,
)

var ErrInvalidEnquiryStatus = New(
	CodeInvalidStatus,
	"enquiry",
	"Unknown enquiry status",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
