package model

import (
	"time"

	"github.com/google/uuid"
)

// Auditoria is the append-only action log. Rows are written asynchronously
// by the worker pool — never updated or deleted.
type Auditoria struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Acao       string     `gorm:"type:varchar(50);not null"`
	Entidade   string     `gorm:"type:varchar(50);not null"`
	EntidadeID *uuid.UUID `gorm:"type:uuid"`
	UsuarioID  *uuid.UUID `gorm:"type:uuid"`
	Detalhe    *string
	CreatedAt  time.Time
}

func (Auditoria) TableName() string { return "auditoria" }
