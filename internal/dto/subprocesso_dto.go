package dto

import "github.com/google/uuid"

type CriarSubprocessoRequest struct {
	Nome       string  `json:"nome"        validate:"required,min=2,max=100"`
	Descricao  *string `json:"descricao"`
	ProcessoID string  `json:"processo_id" validate:"required,uuid"`
}

type AtualizarSubprocessoRequest struct {
	Nome       *string `json:"nome"        validate:"omitempty,min=2,max=100"`
	Descricao  *string `json:"descricao"`
	ProcessoID *string `json:"processo_id" validate:"omitempty,uuid"`
	Ativo      *bool   `json:"ativo"`
}

type SubprocessoResponse struct {
	ID         uuid.UUID `json:"id"`
	Nome       string    `json:"nome"`
	Descricao  *string   `json:"descricao,omitempty"`
	ProcessoID uuid.UUID `json:"processo_id"`
	Ativo      bool      `json:"ativo"`
}
