package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertCourseRequest is shared by create and full update.
type UpsertCourseRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Duration         string   `json:"duration"`
	Modules          []Module `json:"modules"`
	Highlights       []string `json:"highlights"`
	Certification    string   `json:"certification"`
	Price            string   `json:"price"`
	FeaturedImage    string   `json:"featured_image"`
}

func (r UpsertCourseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		// Slug is optional; the service derives one from the title when
		// omitted.
		validation.Field(&r.Slug, validation.Length(1, 255)),
		validation.Field(&r.ShortDescription, validation.Required.Error("short_description is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Duration, validation.Required.Error("duration is required")),
		validation.Field(&r.Certification, validation.Required.Error("certification is required")),
	)
}
