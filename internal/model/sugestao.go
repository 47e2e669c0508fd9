package model

import (
	"time"

	"github.com/google/uuid"
)

// Sugestao is a change proposal awaiting administrator decision.
// Tipo: "novo" | "edicao"
// Status: "pendente" | "aprovada" | "rejeitada" — pendente is the only
// non-terminal state; transitions are one-way.
// Escopo: "area" | "processo" | "subprocesso" | "servico"
type Sugestao struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo   string    `gorm:"type:varchar(20);not null"`
	Status string    `gorm:"type:varchar(20);not null;default:'pendente';index"`
	Escopo string    `gorm:"type:varchar(20);not null"`
	// Payload holds the JSON-encoded dto.SugestaoPayload (tagged by Escopo).
	// Validated at the boundary before persistence.
	Payload         string `gorm:"type:jsonb;not null"`
	Justificativa   *string
	ComentarioAdmin *string
	CriadoPor       uuid.UUID  `gorm:"type:uuid;index;not null"`
	AprovadoPor     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Sugestao) TableName() string { return "sugestoes" }
