package models

import "time"

// Admin is a member of the bounded back-office roster. The roster capacity
// is enforced in the service layer at creation time.
type Admin struct {
	BaseModel
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"type:varchar(20);default:'admin'" json:"role"`
	Mobile       string    `json:"mobile,omitempty"`

	ResetToken    string     `json:"-"`
	ResetTokenExp *time.Time `json:"-"`
}

// LoginOTP holds the single pending second-factor code for an admin. A new
// login replaces the row, so at most one code per admin is ever live.
type LoginOTP struct {
	BaseModel
	AdminID   string    `gorm:"not null;uniqueIndex" json:"adminId"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Attempts  int       `gorm:"default:0" json:"-"`
	Consumed  bool      `gorm:"default:false" json:"-"`
}
