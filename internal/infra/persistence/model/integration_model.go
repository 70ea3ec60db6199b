package model

import "time"

// IntegracaoContaAzulModel is the GORM-specific struct for the
// 'integracoes_conta_azul' table. One row exists per empresa; the token
// columns stay NULL until the first authorization-code exchange completes.
type IntegracaoContaAzulModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	EmpresaID    int64   `gorm:"not null;uniqueIndex"`
	ClientID     string  `gorm:"type:varchar(255);not null"`
	ClientSecret string  `gorm:"type:varchar(255);not null"`
	AccessToken  *string `gorm:"type:text"`
	RefreshToken *string `gorm:"type:text"`
	ExpiresIn    int     `gorm:"not null;default:0"`
	CreatedAt    time.Time

	// UpdatedAt is stamped on every token write; expiry is computed from it.
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntegracaoContaAzulModel) TableName() string {
	return "integracoes_conta_azul"
}
