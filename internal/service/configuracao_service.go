package service

import (
	"context"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
)

// ConfiguracaoService reads and updates the portal settings singleton.
type ConfiguracaoService interface {
	Obter(ctx context.Context) (*dto.ConfiguracaoResponse, error)
	Atualizar(ctx context.Context, adminID uuid.UUID, req dto.AtualizarConfiguracaoRequest) (*dto.ConfiguracaoResponse, error)
}

type configuracaoService struct {
	repo    repository.ConfiguracaoRepository
	auditor *Auditor
}

func NewConfiguracaoService(repo repository.ConfiguracaoRepository, auditor *Auditor) ConfiguracaoService {
	return &configuracaoService{repo: repo, auditor: auditor}
}

func (s *configuracaoService) Obter(ctx context.Context) (*dto.ConfiguracaoResponse, error) {
	c, err := s.repo.Obter(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ConfiguracaoResponse{
		NomePortal:         c.NomePortal,
		EmailContato:       c.EmailContato,
		MensagemBoasVindas: c.MensagemBoasVindas,
		SugestoesAbertas:   c.SugestoesAbertas,
	}, nil
}

func (s *configuracaoService) Atualizar(ctx context.Context, adminID uuid.UUID, req dto.AtualizarConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	c, err := s.repo.Obter(ctx)
	if err != nil {
		return nil, err
	}

	if req.NomePortal != nil {
		c.NomePortal = *req.NomePortal
	}
	if req.EmailContato != nil {
		c.EmailContato = req.EmailContato
	}
	if req.MensagemBoasVindas != nil {
		c.MensagemBoasVindas = req.MensagemBoasVindas
	}
	if req.SugestoesAbertas != nil {
		c.SugestoesAbertas = *req.SugestoesAbertas
	}
	if err := s.repo.Atualizar(ctx, c); err != nil {
		return nil, err
	}

	s.auditor.registrar(ctx, "configuracao_atualizada", "configuracao", c.ID, adminID, nil)
	return s.Obter(ctx)
}
