package database

import (
	"time"
)

// BlogPost is the canonical persistent blog record mirrored from the
// external feed. Slug is the idempotency key for sync: created at most
// once per distinct slug, and ExternalID/Slug never change post-creation.
type BlogPost struct {
	ID          int64     `json:"id"`
	ExternalID  string    `json:"externalId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	LastFetched time.Time `json:"lastFetched"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostUpdate holds the mutable fields a forced sync overwrites.
// ExternalID and Slug are deliberately absent.
type PostUpdate struct {
	Title       string
	Content     string
	Excerpt     string
	Author      string
	PublishedAt time.Time
	ImageURL    string
	Tags        []string
	LastFetched time.Time
}

// Contact is a lead captured from the site contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking is a consultation request, optionally tied to a contact.
type Booking struct {
	ID        int64     `json:"id"`
	ContactID int64     `json:"contactId"`
	Service   string    `json:"service"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
