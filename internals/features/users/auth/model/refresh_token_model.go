package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel menyimpan HASH refresh token (bukan token mentah)
type RefreshTokenModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	AdminID   uuid.UUID  `gorm:"column:admin_id;type:uuid;not null;index" json:"admin_id"`
	Token     string     `gorm:"type:text;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UserAgent *string    `gorm:"type:text" json:"user_agent,omitempty"`
	IP        *string    `gorm:"type:varchar(64)" json:"ip,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
