package entity

import "time"

// PDVLicencaGrupo groups the point-of-sale licenses of one customer:
// a matriz (head office) plus its filiais (branches).
type PDVLicencaGrupo struct {
	ID       int64              `json:"id"`
	CodGrupo int                `json:"cod_grupo"`
	Filiais  []*PDVLicencaFilial `json:"filiais,omitempty"`
}

// PDVLicencaFilial is one point-of-sale license record pulled from the PDV
// platform. Matriz marks the head-office row the listing pivots on.
type PDVLicencaFilial struct {
	ID              int64     `json:"id"`
	GrupoID         int64     `json:"grupo_id"`

	// Grupo is populated by the matriz listing so branch rows can be
	// nested under their head office.
	Grupo *PDVLicencaGrupo `json:"grupo,omitempty"`

	CodFilial       int       `json:"cod_filial"`
	CodGrupo        int       `json:"cod_grupo"`
	Nome            string    `json:"nome"`
	Documento       string    `json:"documento"`
	Ativo           bool      `json:"ativo"`
	Matriz          bool      `json:"matriz"`
	Produto         string    `json:"produto"`
	DataCadastroAPI time.Time `json:"data_cadastro_api"`
}
