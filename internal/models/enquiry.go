package models

import "gorm.io/datatypes"

// Enquiry is a polymorphic lead record. Type selects which keys the Data
// payload is expected to carry; the payload itself is stored verbatim,
// extra keys included, so the external JSON shape survives round trips.
type Enquiry struct {
	BaseModel
	Type   EnquiryType       `gorm:"type:varchar(20);not null;index" json:"type"`
	Name   string            `gorm:"not null" json:"name"`
	Email  string            `gorm:"not null" json:"email"`
	Phone  string            `json:"phone,omitempty"`
	Status EnquiryStatus     `gorm:"type:varchar(20);default:'new';index" json:"status"`
	Data   datatypes.JSONMap `json:"data"`
}
