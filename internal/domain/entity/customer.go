package entity

import "time"

// ContaAzulCustomer is the local mirror of one upstream "pessoa" record,
// scoped to the empresa that synchronized it. CAID is the upstream-assigned
// identifier and the reconciliation key for both sync passes.
type ContaAzulCustomer struct {
	ID   int64  `json:"id"`
	CAID string `json:"ca_id"`

	// Carried-over identifiers from the legacy Conta Azul system; written
	// once at creation and never updated afterwards.
	IDLegado   *string `json:"id_legado"`
	UUIDLegado *string `json:"uuid_legado"`

	Nome        string   `json:"nome"`
	Documento   string   `json:"documento"`
	Email       string   `json:"email"`
	Telefone    string   `json:"telefone"`
	Ativo       bool     `json:"ativo"`
	TipoPessoa  string   `json:"tipo_pessoa"`
	Perfis      []string `json:"perfis"`
	Observacoes string   `json:"observacoes"`

	// Upstream timestamps, absent for records predating their introduction.
	DataCriacaoCA   *time.Time `json:"data_criacao_ca"`
	DataAlteracaoCA *time.Time `json:"data_alteracao_ca"`

	// Contract linkage, populated by the second sync pass.
	ContratoID         *string    `json:"contrato_id"`
	ContratoStatus     *string    `json:"contrato_status"`
	ContratoNumero     *string    `json:"contrato_numero"`
	ContratoInicio     *time.Time `json:"contrato_inicio"`
	ContratoVencimento *time.Time `json:"contrato_vencimento"`

	// EmpresaID is the owning tenant, set only at creation.
	EmpresaID int64 `json:"empresa_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContractLink carries the four contract-linkage fields applied to a
// customer during the contract sync pass.
type ContractLink struct {
	ContratoID         string
	ContratoStatus     string
	ContratoNumero     string
	ContratoInicio     *time.Time
	ContratoVencimento *time.Time
}
