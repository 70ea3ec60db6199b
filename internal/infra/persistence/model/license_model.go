package model

import "time"

// PDVLicencaGrupoModel is the GORM-specific struct for the
// 'pdv_licenca_grupos' table. A grupo ties a matriz row to its filiais.
type PDVLicencaGrupoModel struct {
	ID       int64                   `gorm:"primaryKey;autoIncrement"`
	CodGrupo int                     `gorm:"not null;uniqueIndex"`
	Filiais  []*PDVLicencaFilialModel `gorm:"foreignKey:GrupoID"`
}

// TableName explicitly sets the table name for GORM.
func (PDVLicencaGrupoModel) TableName() string {
	return "pdv_licenca_grupos"
}

// PDVLicencaFilialModel is the GORM-specific struct for the
// 'pdv_licenca_filiais' table, one point-of-sale license record.
type PDVLicencaFilialModel struct {
	ID      int64                 `gorm:"primaryKey;autoIncrement"`
	GrupoID int64                 `gorm:"not null;index"`
	Grupo   *PDVLicencaGrupoModel `gorm:"foreignKey:GrupoID"`

	CodFilial       int    `gorm:"not null"`
	CodGrupo        int    `gorm:"not null;index"`
	Nome            string `gorm:"type:varchar(255);not null"`
	Documento       string `gorm:"type:varchar(20)"`
	Ativo           bool   `gorm:"not null;default:true"`
	Matriz          bool   `gorm:"not null;default:false;index"`
	Produto         string `gorm:"type:varchar(100)"`
	DataCadastroAPI time.Time
}

// TableName explicitly sets the table name for GORM.
func (PDVLicencaFilialModel) TableName() string {
	return "pdv_licenca_filiais"
}
