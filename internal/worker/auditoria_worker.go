package worker

// auditoria_worker.go
// Consumes QueueAuditoria and appends rows to the auditoria table, keeping
// audit writes off the request path.

import (
	"context"
	"encoding/json"
	"fmt"

	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuditoriaJobPayload is the job envelope sent to QueueAuditoria.
type AuditoriaJobPayload struct {
	Acao       string  `json:"acao"`
	Entidade   string  `json:"entidade"`
	EntidadeID *string `json:"entidade_id,omitempty"`
	UsuarioID  *string `json:"usuario_id,omitempty"`
	Detalhe    *string `json:"detalhe,omitempty"`
}

// AuditoriaWorker processes audit jobs from QueueAuditoria.
type AuditoriaWorker struct {
	repo repository.AuditoriaRepository
}

func NewAuditoriaWorker(repo repository.AuditoriaRepository) *AuditoriaWorker {
	return &AuditoriaWorker{repo: repo}
}

// Process appends one auditoria row.
func (w *AuditoriaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AuditoriaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("auditoria_worker: invalid payload: %w", err)
	}

	entry := model.Auditoria{
		Acao:     payload.Acao,
		Entidade: payload.Entidade,
		Detalhe:  payload.Detalhe,
	}
	if payload.EntidadeID != nil {
		if id, err := uuid.Parse(*payload.EntidadeID); err == nil {
			entry.EntidadeID = &id
		}
	}
	if payload.UsuarioID != nil {
		if id, err := uuid.Parse(*payload.UsuarioID); err == nil {
			entry.UsuarioID = &id
		}
	}

	if err := w.repo.Criar(ctx, &entry); err != nil {
		return fmt.Errorf("auditoria_worker: insert: %w", err)
	}
	log.Debug().Str("acao", payload.Acao).Str("entidade", payload.Entidade).Msg("auditoria_worker: row recorded")
	return nil
}
