package store

import "estatehub/server/internal/models"

// BlogPosts returns all posts, newest first.
func (s *Store) BlogPosts() []models.BlogPost {
	return s.blogs
}

// GetBlogPostBySlug returns a post by slug, or nil.
func (s *Store) GetBlogPostBySlug(slug string) *models.BlogPost {
	for i := range s.blogs {
		if s.blogs[i].Slug == slug {
			return &s.blogs[i]
		}
	}
	return nil
}
