package model

import "time"

// ContaAzulClienteModel is the GORM-specific struct for the
// 'conta_azul_clientes' table, the local mirror of upstream "pessoa" records.
// CAID carries the upstream identifier and is the reconciliation key.
type ContaAzulClienteModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	CAID string `gorm:"column:ca_id;type:varchar(64);not null;uniqueIndex"`

	IDLegado   *string `gorm:"type:varchar(64)"`
	UUIDLegado *string `gorm:"type:varchar(64)"`

	Nome        string `gorm:"type:varchar(255);not null"`
	Documento   string `gorm:"type:varchar(20)"`
	Email       string `gorm:"type:varchar(255)"`
	Telefone    string `gorm:"type:varchar(30)"`
	Ativo       bool   `gorm:"not null;default:true"`
	TipoPessoa  string `gorm:"type:varchar(20)"`
	Perfis      string `gorm:"type:text"` // Comma-joined upstream profile labels.
	Observacoes string `gorm:"type:text"`

	DataCriacaoCA   *time.Time
	DataAlteracaoCA *time.Time

	ContratoID         *string `gorm:"type:varchar(64)"`
	ContratoStatus     *string `gorm:"type:varchar(30)"`
	ContratoNumero     *string `gorm:"type:varchar(30)"`
	ContratoInicio     *time.Time
	ContratoVencimento *time.Time

	EmpresaID int64 `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContaAzulClienteModel) TableName() string {
	return "conta_azul_clientes"
}
