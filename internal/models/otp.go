package models

import "time"

type EmailOTP struct {
	ID        uint `gorm:"primaryKey"`
	Email     string
	Code      string
	IsUsed    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}
