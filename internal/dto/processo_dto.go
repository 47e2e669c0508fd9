package dto

import "github.com/google/uuid"

type CriarProcessoRequest struct {
	Nome      string  `json:"nome"      validate:"required,min=2,max=100"`
	Descricao *string `json:"descricao"`
	AreaID    string  `json:"area_id"   validate:"required,uuid"`
}

type AtualizarProcessoRequest struct {
	Nome      *string `json:"nome"      validate:"omitempty,min=2,max=100"`
	Descricao *string `json:"descricao"`
	AreaID    *string `json:"area_id"   validate:"omitempty,uuid"`
	Ativo     *bool   `json:"ativo"`
}

type ProcessoResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Descricao *string   `json:"descricao,omitempty"`
	AreaID    uuid.UUID `json:"area_id"`
	Ativo     bool      `json:"ativo"`
}
