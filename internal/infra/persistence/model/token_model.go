package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenModel mirrors the 'access_tokens' table. The opaque token value
// is the lookup key used by the auth middleware on every request.
type AccessTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string     `gorm:"type:varchar(64);unique;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time  `gorm:"not null"`
	ExpiredAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}

// ResetPasswordTokenModel mirrors the 'reset_password_tokens' table.
type ResetPasswordTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string     `gorm:"type:varchar(255);not null;index"`
	Token     string     `gorm:"type:varchar(64);not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	ExpiredAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetPasswordTokenModel) TableName() string {
	return "reset_password_tokens"
}
