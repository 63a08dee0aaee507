package domain

import "time"

// ContentTypeText is the default rendering hint for new content.
const ContentTypeText = "text"

// Content is a publishable block of wedding information, keyed by a unique
// human-readable string such as "welcome_message" or "venue_info". Content is
// global: it is not scoped to an organizer. Non-public rows are visible only
// through the admin view.
type Content struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"content"`
	ContentType string `json:"content_type"`
	IsPublic    bool   `json:"is_public"`
	Order       int    `json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
