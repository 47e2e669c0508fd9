package dto

import "github.com/google/uuid"

// ─── Request DTOs ─────────────────────────────────────────────────────────────

type CriarAreaRequest struct {
	Nome      string  `json:"nome"      validate:"required,min=2,max=100"`
	Icone     *string `json:"icone"`
	Descricao *string `json:"descricao"`
}

type AtualizarAreaRequest struct {
	Nome      *string `json:"nome"      validate:"omitempty,min=2,max=100"`
	Icone     *string `json:"icone"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

// ─── Response DTOs ────────────────────────────────────────────────────────────

type AreaResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Icone     *string   `json:"icone,omitempty"`
	Descricao *string   `json:"descricao,omitempty"`
	Ativo     bool      `json:"ativo"`
}
