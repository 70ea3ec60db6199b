// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Empresa represents a managed company (tenant) of the back office.
type Empresa struct {
	ID           int64     `json:"id"`            // Sequential tenant identifier, referenced by every integration record.
	CNPJ         string    `json:"cnpj"`          // Brazilian company registration number (14 digits).
	RazaoSocial  string    `json:"razao_social"`  // Legal company name.
	NomeFantasia string    `json:"nome_fantasia"` // Trade name shown across the dashboard.
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
