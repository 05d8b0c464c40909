package dto

import "time"

type CourseRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Slug        string  `json:"slug" validate:"required,min=2,max=100,lowercase"`
	Description string  `json:"description" validate:"max=10000"`
	Duration    string  `json:"duration" validate:"max=100"`
	Level       string  `json:"level" validate:"max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	Active      *bool   `json:"active"`
}

type BatchRequest struct {
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	StartDate time.Time `json:"startDate" validate:"required"`
	Schedule  string    `json:"schedule" validate:"max=200"`
	Mode      string    `json:"mode" validate:"required,batch_mode"`
	Capacity  int       `json:"capacity" validate:"gte=0"`
	Active    *bool     `json:"active"`
}

type TestimonialRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Role      string `json:"role" validate:"max=100"`
	Content   string `json:"content" validate:"required,max=2000"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Published *bool  `json:"published"`
}

type GalleryImageRequest struct {
	Title     string `json:"title" validate:"max=200"`
	Category  string `json:"category" validate:"max=100"`
	Published *bool  `json:"published"`
}
