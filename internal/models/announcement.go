package models

import "time"

// Announcement is an append-only notice shown on the dashboard.
// There is no update or delete for announcements.
type Announcement struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// AnnouncementRequest is used for announcement creation
type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
}
