package models

// Testimonial is a published student quote on the public site.
type Testimonial struct {
	BaseModel
	Name      string `gorm:"not null" json:"name"`
	Role      string `json:"role"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Rating    int    `gorm:"default:5" json:"rating"`
	PhotoPath string `json:"photoPath,omitempty"`
	Published bool   `gorm:"index" json:"published"`
}

// GalleryImage is an uploaded image shown in the public gallery.
type GalleryImage struct {
	BaseModel
	Title     string `json:"title"`
	Category  string `gorm:"index" json:"category"`
	Path      string `gorm:"not null" json:"path"`
	Published bool   `gorm:"index" json:"published"`
}
