package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken is a server-side record of an issued refresh token. Tokens are
// single use: Refresh revokes the presented row and issues a new one.
type RefreshToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}
