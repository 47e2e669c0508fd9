package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Suggestion scopes, kinds, modes and statuses. The payload is a tagged
// union discriminated by Escopo — each scope only reads its own fields.
const (
	EscopoArea        = "area"
	EscopoProcesso    = "processo"
	EscopoSubprocesso = "subprocesso"
	EscopoServico     = "servico"

	TipoNovo   = "novo"
	TipoEdicao = "edicao"

	ModoCriacao = "criacao"
	ModoEdicao  = "edicao"

	StatusPendente  = "pendente"
	StatusAprovada  = "aprovada"
	StatusRejeitada = "rejeitada"
)

// SugestaoPayload carries the proposed field values. Which identifying
// fields are mandatory depends on Escopo/Modo (see Validar in the service):
//   - area: none
//   - processo: AreaID
//   - subprocesso: AreaID + ProcessoID
//   - servico: AreaID + ProcessoID + SubprocessoID
//   - edição (any scope): additionally AlvoID, the entity being edited
type SugestaoPayload struct {
	Escopo string `json:"escopo" validate:"required,oneof=area processo subprocesso servico"`
	Modo   string `json:"modo"   validate:"required,oneof=criacao edicao"`

	// Hierarchy anchors
	AreaID        *uuid.UUID `json:"area_id,omitempty"`
	ProcessoID    *uuid.UUID `json:"processo_id,omitempty"`
	SubprocessoID *uuid.UUID `json:"subprocesso_id,omitempty"`
	// AlvoID identifies the existing entity targeted by an edit.
	AlvoID *uuid.UUID `json:"alvo_id,omitempty"`

	// Common proposed fields
	Nome      string  `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
	Icone     *string `json:"icone,omitempty"`

	// Servico-only proposed fields
	OQueE                  *string          `json:"o_que_e,omitempty"`
	QuemPodeUtilizar       *string          `json:"quem_pode_utilizar,omitempty"`
	RequisitosOperacionais *string          `json:"requisitos_operacionais,omitempty"`
	Observacoes            *string          `json:"observacoes,omitempty"`
	TempoMedio             *decimal.Decimal `json:"tempo_medio,omitempty"`
	TempoMedioUnidade      *string          `json:"tempo_medio_unidade,omitempty"`
	SLA                    *decimal.Decimal `json:"sla,omitempty"`
	SLI                    *decimal.Decimal `json:"sli,omitempty"`
	Ano                    *int             `json:"ano,omitempty"`
	DemandaRotina          *string          `json:"demanda_rotina,omitempty"`
}

// ─── Request DTOs ─────────────────────────────────────────────────────────────

type CriarSugestaoRequest struct {
	Tipo          string          `json:"tipo"          validate:"required,oneof=novo edicao"`
	Payload       SugestaoPayload `json:"payload"       validate:"required"`
	Justificativa *string         `json:"justificativa" validate:"omitempty,max=2000"`
}

type ResolverSugestaoRequest struct {
	Decisao         string  `json:"decisao"          validate:"required,oneof=aprovada rejeitada"`
	ComentarioAdmin *string `json:"comentario_admin" validate:"omitempty,max=2000"`
}

type SugestaoFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=pendente aprovada rejeitada"`
}

// ─── Response DTOs ────────────────────────────────────────────────────────────

type SugestaoResponse struct {
	ID              uuid.UUID       `json:"id"`
	Tipo            string          `json:"tipo"`
	Status          string          `json:"status"`
	Escopo          string          `json:"escopo"`
	Payload         SugestaoPayload `json:"payload"`
	Justificativa   *string         `json:"justificativa,omitempty"`
	ComentarioAdmin *string         `json:"comentario_admin,omitempty"`
	CriadoPor       uuid.UUID       `json:"criado_por"`
	AprovadoPor     *uuid.UUID      `json:"aprovado_por,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}
