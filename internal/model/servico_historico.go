package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicoHistorico snapshots a Servico row before each update, so every
// version remains queryable. Versao is the version being superseded.
type ServicoHistorico struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServicoID              uuid.UUID `gorm:"type:uuid;index;not null"`
	Versao                 int       `gorm:"not null"`
	Nome                   string    `gorm:"not null"`
	OQueE                  *string   `gorm:"column:o_que_e"`
	QuemPodeUtilizar       *string
	RequisitosOperacionais *string
	Observacoes            *string
	TempoMedio             *decimal.Decimal `gorm:"type:decimal(10,2)"`
	TempoMedioUnidade      *string
	SLA                    *decimal.Decimal `gorm:"column:sla;type:decimal(10,2)"`
	SLI                    *decimal.Decimal `gorm:"column:sli;type:decimal(10,2)"`
	Ano                    *int
	DemandaRotina          string `gorm:"type:varchar(20);not null"`
	Status                 string `gorm:"type:varchar(20);not null"`
	AlteradoPor            uuid.UUID `gorm:"type:uuid"`
	CreatedAt              time.Time
}

func (ServicoHistorico) TableName() string { return "servicos_historico" }
