package models

import "time"

// Inquiry is a contact-form lead persisted for follow-up.
type Inquiry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	PropertyID string    `json:"propertyId,omitempty"`
	AreaSlug   string    `json:"areaSlug,omitempty"`
	Source     string    `json:"source"`
	IP         string    `json:"-"`
	UserAgent  string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PropertyView is a single view-tracking event for a listing.
type PropertyView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
}
