package models

// Enrollment is a public course sign-up awaiting admin confirmation.
type Enrollment struct {
	BaseModel
	CourseID string           `gorm:"not null;index" json:"courseId"`
	BatchID  string           `json:"batchId,omitempty"`
	Name     string           `gorm:"not null" json:"name"`
	Email    string           `gorm:"not null" json:"email"`
	Phone    string           `gorm:"not null" json:"phone"`
	Message  string           `gorm:"type:text" json:"message,omitempty"`
	Status   EnrollmentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}

// SyllabusRequest is the lead captured when a visitor downloads a course
// syllabus.
type SyllabusRequest struct {
	BaseModel
	CourseID string `gorm:"not null;index" json:"courseId"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone,omitempty"`
}
