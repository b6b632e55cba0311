package model

// Collection is the courses document collection.
const Collection = "courses"

// Module is one ordered unit of a course syllabus.
type Module struct {
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// Course is a published training program. Slug is the public lookup key;
// active=false hides a course without deleting it.
type Course struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Duration         string   `json:"duration"`
	Modules          []Module `json:"modules"`
	Highlights       []string `json:"highlights"`
	Certification    string   `json:"certification"`
	Price            string   `json:"price,omitempty"`
	FeaturedImage    string   `json:"featured_image,omitempty"`
	Active           bool     `json:"active"`
	CreatedAt        string   `json:"created_at"`
}
