package model

// Collection is the blog posts document collection.
const Collection = "blogs"

// DefaultAuthor is filled in when a post arrives without one.
const DefaultAuthor = "Skillax Team"

// BlogPost is a CMS article. Slug is the public lookup key and must be
// unique across stored posts.
type BlogPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Published     bool     `json:"published"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
