package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ─────────────────────────────────────────────────────────────

type CriarServicoRequest struct {
	Nome                   string           `json:"nome"                    validate:"required,min=2,max=200"`
	OQueE                  *string          `json:"o_que_e"`
	QuemPodeUtilizar       *string          `json:"quem_pode_utilizar"`
	RequisitosOperacionais *string          `json:"requisitos_operacionais"`
	Observacoes            *string          `json:"observacoes"`
	TempoMedio             *decimal.Decimal `json:"tempo_medio"             validate:"omitempty,min=0"`
	TempoMedioUnidade      *string          `json:"tempo_medio_unidade"     validate:"omitempty,oneof=horas dias semanas"`
	SLA                    *decimal.Decimal `json:"sla"                     validate:"omitempty,min=0"`
	SLI                    *decimal.Decimal `json:"sli"                     validate:"omitempty,min=0"`
	Ano                    *int             `json:"ano"                     validate:"omitempty,min=2000,max=2100"`
	DemandaRotina          string           `json:"demanda_rotina"          validate:"required,oneof=demanda rotina"`
	SubprocessoID          string           `json:"subprocesso_id"          validate:"required,uuid"`
}

type AtualizarServicoRequest struct {
	Nome                   *string          `json:"nome"                    validate:"omitempty,min=2,max=200"`
	OQueE                  *string          `json:"o_que_e"`
	QuemPodeUtilizar       *string          `json:"quem_pode_utilizar"`
	RequisitosOperacionais *string          `json:"requisitos_operacionais"`
	Observacoes            *string          `json:"observacoes"`
	TempoMedio             *decimal.Decimal `json:"tempo_medio"             validate:"omitempty,min=0"`
	TempoMedioUnidade      *string          `json:"tempo_medio_unidade"     validate:"omitempty,oneof=horas dias semanas"`
	SLA                    *decimal.Decimal `json:"sla"                     validate:"omitempty,min=0"`
	SLI                    *decimal.Decimal `json:"sli"                     validate:"omitempty,min=0"`
	Ano                    *int             `json:"ano"                     validate:"omitempty,min=2000,max=2100"`
	DemandaRotina          *string          `json:"demanda_rotina"          validate:"omitempty,oneof=demanda rotina"`
	Status                 *string          `json:"status"                  validate:"omitempty,oneof=ativo inativo"`
	SubprocessoID          *string          `json:"subprocesso_id"          validate:"omitempty,uuid"`
}

// ─── Response DTOs ────────────────────────────────────────────────────────────

// ServicoResponse is the full detail view, ancestor names included.
type ServicoResponse struct {
	ID                     uuid.UUID        `json:"id"`
	Nome                   string           `json:"nome"`
	OQueE                  *string          `json:"o_que_e,omitempty"`
	QuemPodeUtilizar       *string          `json:"quem_pode_utilizar,omitempty"`
	RequisitosOperacionais *string          `json:"requisitos_operacionais,omitempty"`
	Observacoes            *string          `json:"observacoes,omitempty"`
	TempoMedio             *decimal.Decimal `json:"tempo_medio,omitempty"`
	TempoMedioUnidade      *string          `json:"tempo_medio_unidade,omitempty"`
	SLA                    *decimal.Decimal `json:"sla,omitempty"`
	SLI                    *decimal.Decimal `json:"sli,omitempty"`
	Ano                    *int             `json:"ano,omitempty"`
	DemandaRotina          string           `json:"demanda_rotina"`
	Status                 string           `json:"status"`
	Versao                 int              `json:"versao"`
	SubprocessoID          uuid.UUID        `json:"subprocesso_id"`
	Subprocesso            string           `json:"subprocesso,omitempty"`
	Processo               string           `json:"processo,omitempty"`
	Area                   string           `json:"area,omitempty"`
	CreatedAt              string           `json:"created_at"`
	UpdatedAt              string           `json:"updated_at"`
}

// ServicoHistoricoResponse is one superseded version of a service.
type ServicoHistoricoResponse struct {
	Versao        int              `json:"versao"`
	Nome          string           `json:"nome"`
	SLA           *decimal.Decimal `json:"sla,omitempty"`
	SLI           *decimal.Decimal `json:"sli,omitempty"`
	DemandaRotina string           `json:"demanda_rotina"`
	Status        string           `json:"status"`
	AlteradoPor   string           `json:"alterado_por"`
	CreatedAt     string           `json:"created_at"`
}
