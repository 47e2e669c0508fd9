package model

import (
	"time"

	"github.com/google/uuid"
)

// Configuracao is the portal-wide settings singleton. The repository
// guarantees at most one row exists.
type Configuracao struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomePortal         string    `gorm:"not null;default:'Catálogo de Serviços'"`
	EmailContato       *string
	MensagemBoasVindas *string
	// SugestoesAbertas gates the suggestion form portal-wide.
	SugestoesAbertas bool `gorm:"not null;default:true"`
	UpdatedAt        time.Time
}

func (Configuracao) TableName() string { return "configuracoes" }
