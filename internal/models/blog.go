package models

// BlogPost is a published article from the blog index.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content,omitempty"`
	Author      string   `json:"author,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt string   `json:"publishedAt"`
}
