package entity

import "time"

// Testimonial is visitor feedback shown publicly once approved by an admin.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Role       *string   `json:"role,omitempty"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"` // 1 to 5.
	AvatarURL  *string   `json:"avatarUrl,omitempty"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}
