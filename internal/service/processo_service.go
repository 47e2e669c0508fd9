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

// ProcessoService is the admin CRUD surface for processos.
type ProcessoService interface {
	Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarProcessoRequest) (*dto.ProcessoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProcessoResponse, error)
	Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarProcessoRequest) (*dto.ProcessoResponse, error)
	Desativar(ctx context.Context, adminID, id uuid.UUID) error
	Reativar(ctx context.Context, adminID, id uuid.UUID) error
}

type processoService struct {
	repo     repository.ProcessoRepository
	areas    repository.AreaRepository
	catalogo CatalogoService
	auditor  *Auditor
}

func NewProcessoService(repo repository.ProcessoRepository, areas repository.AreaRepository, catalogo CatalogoService, auditor *Auditor) ProcessoService {
	return &processoService{repo: repo, areas: areas, catalogo: catalogo, auditor: auditor}
}

func (s *processoService) Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarProcessoRequest) (*dto.ProcessoResponse, error) {
	areaID, err := uuid.Parse(req.AreaID)
	if err != nil {
		return nil, novaValidacao("area_id", "uuid inválido")
	}
	area, err := s.areas.ObterPorID(ctx, areaID)
	if err != nil || !area.Ativo {
		return nil, &NaoEncontradoError{Entidade: "Área"}
	}

	p := model.Processo{Nome: req.Nome, Descricao: req.Descricao, AreaID: areaID, Ativo: true}
	if err := s.repo.Criar(ctx, &p); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "processo_criado", "processo", p.ID, adminID, nil)
	return montarProcessoResponse(p), nil
}

func (s *processoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProcessoResponse, error) {
	p, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Processo"}
	}
	if err != nil {
		return nil, err
	}
	return montarProcessoResponse(*p), nil
}

func (s *processoService) Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarProcessoRequest) (*dto.ProcessoResponse, error) {
	p, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Processo"}
	}
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.AreaID != nil {
		areaID, err := uuid.Parse(*req.AreaID)
		if err != nil {
			return nil, novaValidacao("area_id", "uuid inválido")
		}
		area, err := s.areas.ObterPorID(ctx, areaID)
		if err != nil || !area.Ativo {
			return nil, &NaoEncontradoError{Entidade: "Área"}
		}
		p.AreaID = areaID
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}
	p.Area = nil
	p.Subprocessos = nil
	if err := s.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "processo_atualizado", "processo", p.ID, adminID, nil)
	return montarProcessoResponse(*p), nil
}

func (s *processoService) Desativar(ctx context.Context, adminID, id uuid.UUID) error {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "processo_desativado", "processo", id, adminID, nil)
	return nil
}

func (s *processoService) Reativar(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "processo_reativado", "processo", id, adminID, nil)
	return nil
}

func montarProcessoResponse(p model.Processo) *dto.ProcessoResponse {
	return &dto.ProcessoResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Descricao: p.Descricao,
		AreaID:    p.AreaID,
		Ativo:     p.Ativo,
	}
}
