package model

import (
	"time"

	"github.com/google/uuid"
)

// Subprocesso groups services inside a Processo; direct parent of Servico.
type Subprocesso struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string    `gorm:"index;not null"`
	Descricao  *string
	ProcessoID uuid.UUID `gorm:"type:uuid;index;not null"`
	Ativo      bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Processo *Processo `gorm:"foreignKey:ProcessoID"`
	Servicos []Servico `gorm:"foreignKey:SubprocessoID"`
}

func (Subprocesso) TableName() string { return "subprocessos" }
