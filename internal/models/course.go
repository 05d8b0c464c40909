package models

import "time"

// Course is a catalog entry. Syllabus holds the relative storage path of the
// downloadable syllabus document, when one has been uploaded.
type Course struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	Syllabus    string  `json:"syllabus,omitempty"`
	Active      bool    `gorm:"index" json:"active"`

	Batches []Batch `gorm:"foreignKey:CourseID" json:"batches,omitempty"`
}

// Batch is a scheduled run of a course.
type Batch struct {
	BaseModel
	CourseID  string    `gorm:"not null;index" json:"courseId"`
	Name      string    `gorm:"not null" json:"name"`
	StartDate time.Time `json:"startDate"`
	Schedule  string    `json:"schedule"`
	Mode      BatchMode `gorm:"type:varchar(20);default:'online'" json:"mode"`
	Capacity  int       `json:"capacity"`
	Active    bool      `gorm:"index" json:"active"`
}
