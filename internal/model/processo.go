package model

import (
	"time"

	"github.com/google/uuid"
)

// Processo is a mid-level grouping inside an Area.
type Processo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Descricao *string
	AreaID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Area         *Area         `gorm:"foreignKey:AreaID"`
	Subprocessos []Subprocesso `gorm:"foreignKey:ProcessoID"`
}

func (Processo) TableName() string { return "processos" }
