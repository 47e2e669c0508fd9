package model

import (
	"time"

	"github.com/google/uuid"
)

// Area is the top-level grouping of the services catalog.
type Area struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Icone     *string
	Descricao *string
	Ativo     bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Processos []Processo `gorm:"foreignKey:AreaID"`
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Area) TableName() string { return "areas" }
