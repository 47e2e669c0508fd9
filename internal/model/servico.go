package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servico is a leaf catalog entry describing one offered service.
// DemandaRotina: "demanda" | "rotina"
// Status: "ativo" | "inativo"
type Servico struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome                   string    `gorm:"index;not null"`
	OQueE                  *string   `gorm:"column:o_que_e"`
	QuemPodeUtilizar       *string
	RequisitosOperacionais *string
	Observacoes            *string
	// TempoMedio is the average turnaround expressed in TempoMedioUnidade
	// ("horas" | "dias" | "semanas").
	TempoMedio        *decimal.Decimal `gorm:"type:decimal(10,2)"`
	TempoMedioUnidade *string
	SLA               *decimal.Decimal `gorm:"column:sla;type:decimal(10,2)"`
	SLI               *decimal.Decimal `gorm:"column:sli;type:decimal(10,2)"`
	Ano               *int
	DemandaRotina     string    `gorm:"type:varchar(20);not null;default:'demanda'"`
	Status            string    `gorm:"type:varchar(20);not null;default:'ativo'"`
	Versao            int       `gorm:"not null;default:1"`
	SubprocessoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	CriadoPor         uuid.UUID `gorm:"type:uuid"`
	Ativo             bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Subprocesso *Subprocesso `gorm:"foreignKey:SubprocessoID"`
}

func (Servico) TableName() string { return "servicos" }
