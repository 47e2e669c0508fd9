package model

import (
	"time"

	"github.com/google/uuid"
)

// Anexo is an uploaded file linked to either a Servico or a Sugestao
// (exactly one of the two references is set).
type Anexo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomeArquivo string    `gorm:"not null"`
	URL         string    `gorm:"not null"`
	MimeType    string    `gorm:"not null"`
	Tamanho     int64     `gorm:"not null"`
	ServicoID   *uuid.UUID `gorm:"type:uuid;index"`
	SugestaoID  *uuid.UUID `gorm:"type:uuid;index"`
	CriadoPor   uuid.UUID  `gorm:"type:uuid"`
	Ativo       bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Anexo) TableName() string { return "anexos" }
