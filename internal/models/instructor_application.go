package models

// InstructorApplication is a public teaching application. Resume holds the
// relative storage path of the uploaded file; creation is rejected before
// any write when the file is missing.
type InstructorApplication struct {
	BaseModel
	Name           string            `gorm:"not null" json:"name"`
	Email          string            `gorm:"not null" json:"email"`
	Phone          string            `gorm:"not null" json:"phone"`
	Experience     string            `gorm:"not null" json:"experience"`
	Qualifications string            `gorm:"type:text;not null" json:"qualifications"`
	Resume         string            `gorm:"not null" json:"resume"`
	LinkedIn       string            `json:"linkedin,omitempty"`
	Status         ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
