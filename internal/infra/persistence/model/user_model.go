package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// It represents a back-office operator account.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Nome      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	SenhaHash string    `gorm:"type:varchar(255);not null"`

	TwoFactorEnabled     bool    `gorm:"not null;default:false"`
	TwoFactorSecret      *string `gorm:"type:varchar(255)"`
	TwoFactorBackupCodes *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
