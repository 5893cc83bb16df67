package models

import "time"

// The unique index on email comes from the SQL migrations, not from tags.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}
