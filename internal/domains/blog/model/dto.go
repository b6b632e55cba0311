package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertBlogRequest is shared by create and full update.
type UpsertBlogRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featured_image"`
}

func (r UpsertBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		// Slug is optional; the service derives one from the title when
		// omitted.
		validation.Field(&r.Slug, validation.Length(1, 255)),
		validation.Field(&r.Excerpt, validation.Required.Error("excerpt is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

// ListFilter narrows the public blog listing.
type ListFilter struct {
	Category string
	Limit    int
	Skip     int
}
