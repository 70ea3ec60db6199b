// Package model contains the GORM-specific structs mapping domain entities
// to PostgreSQL tables.
package model

import "time"

// EmpresaModel is the GORM-specific struct for the 'empresas' table.
// It represents a managed company (tenant) of the back office.
type EmpresaModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CNPJ         string `gorm:"type:varchar(14);not null;uniqueIndex"`
	RazaoSocial  string `gorm:"type:varchar(255);not null"`
	NomeFantasia string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255)"`
	Telefone     string `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmpresaModel) TableName() string {
	return "empresas"
}
