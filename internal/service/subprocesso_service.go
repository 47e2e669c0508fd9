package service

import (
	"context"
	"errors"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubprocessoService is the admin CRUD surface for subprocessos.
type SubprocessoService interface {
	Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarSubprocessoRequest) (*dto.SubprocessoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.SubprocessoResponse, error)
	Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarSubprocessoRequest) (*dto.SubprocessoResponse, error)
	Desativar(ctx context.Context, adminID, id uuid.UUID) error
	Reativar(ctx context.Context, adminID, id uuid.UUID) error
}

type subprocessoService struct {
	repo      repository.SubprocessoRepository
	processos repository.ProcessoRepository
	catalogo  CatalogoService
	auditor   *Auditor
}

func NewSubprocessoService(repo repository.SubprocessoRepository, processos repository.ProcessoRepository, catalogo CatalogoService, auditor *Auditor) SubprocessoService {
	return &subprocessoService{repo: repo, processos: processos, catalogo: catalogo, auditor: auditor}
}

func (s *subprocessoService) Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarSubprocessoRequest) (*dto.SubprocessoResponse, error) {
	processoID, err := uuid.Parse(req.ProcessoID)
	if err != nil {
		return nil, novaValidacao("processo_id", "uuid inválido")
	}
	proc, err := s.processos.ObterPorID(ctx, processoID)
	if err != nil || !proc.Ativo {
		return nil, &NaoEncontradoError{Entidade: "Processo"}
	}

	sub := model.Subprocesso{Nome: req.Nome, Descricao: req.Descricao, ProcessoID: processoID, Ativo: true}
	if err := s.repo.Criar(ctx, &sub); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "subprocesso_criado", "subprocesso", sub.ID, adminID, nil)
	return montarSubprocessoResponse(sub), nil
}

func (s *subprocessoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.SubprocessoResponse, error) {
	sub, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Subprocesso"}
	}
	if err != nil {
		return nil, err
	}
	return montarSubprocessoResponse(*sub), nil
}

func (s *subprocessoService) Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarSubprocessoRequest) (*dto.SubprocessoResponse, error) {
	sub, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Subprocesso"}
	}
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		sub.Nome = *req.Nome
	}
	if req.Descricao != nil {
		sub.Descricao = req.Descricao
	}
	if req.ProcessoID != nil {
		processoID, err := uuid.Parse(*req.ProcessoID)
		if err != nil {
			return nil, novaValidacao("processo_id", "uuid inválido")
		}
		proc, err := s.processos.ObterPorID(ctx, processoID)
		if err != nil || !proc.Ativo {
			return nil, &NaoEncontradoError{Entidade: "Processo"}
		}
		sub.ProcessoID = processoID
	}
	if req.Ativo != nil {
		sub.Ativo = *req.Ativo
	}
	sub.Processo = nil
	sub.Servicos = nil
	if err := s.repo.Atualizar(ctx, sub); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "subprocesso_atualizado", "subprocesso", sub.ID, adminID, nil)
	return montarSubprocessoResponse(*sub), nil
}

func (s *subprocessoService) Desativar(ctx context.Context, adminID, id uuid.UUID) error {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "subprocesso_desativado", "subprocesso", id, adminID, nil)
	return nil
}

func (s *subprocessoService) Reativar(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "subprocesso_reativado", "subprocesso", id, adminID, nil)
	return nil
}

func montarSubprocessoResponse(sub model.Subprocesso) *dto.SubprocessoResponse {
	return &dto.SubprocessoResponse{
		ID:         sub.ID,
		Nome:       sub.Nome,
		Descricao:  sub.Descricao,
		ProcessoID: sub.ProcessoID,
		Ativo:      sub.Ativo,
	}
}
