package service

import (
	"context"
	"errors"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AreaService is the admin CRUD surface for areas. Every mutation
// invalidates the catalog cache and records an audit entry.
type AreaService interface {
	Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarAreaRequest) (*dto.AreaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.AreaResponse, error)
	ListarTodas(ctx context.Context) ([]dto.AreaResponse, error)
	Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarAreaRequest) (*dto.AreaResponse, error)
	Desativar(ctx context.Context, adminID, id uuid.UUID) error
	Reativar(ctx context.Context, adminID, id uuid.UUID) error
}

type areaService struct {
	repo     repository.AreaRepository
	catalogo CatalogoService
	auditor  *Auditor
}

func NewAreaService(repo repository.AreaRepository, catalogo CatalogoService, auditor *Auditor) AreaService {
	return &areaService{repo: repo, catalogo: catalogo, auditor: auditor}
}

func (s *areaService) Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarAreaRequest) (*dto.AreaResponse, error) {
	if existente, err := s.repo.ObterPorNome(ctx, req.Nome); err == nil && existente != nil {
		return nil, novaValidacao("nome", "já existe uma área com este nome")
	}

	a := model.Area{Nome: req.Nome, Icone: req.Icone, Descricao: req.Descricao, Ativo: true}
	if err := s.repo.Criar(ctx, &a); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "area_criada", "area", a.ID, adminID, nil)
	return montarAreaResponse(a), nil
}

func (s *areaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.AreaResponse, error) {
	a, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Área"}
	}
	if err != nil {
		return nil, err
	}
	return montarAreaResponse(*a), nil
}

func (s *areaService) ListarTodas(ctx context.Context) ([]dto.AreaResponse, error) {
	list, err := s.repo.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AreaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *montarAreaResponse(a))
	}
	return out, nil
}

func (s *areaService) Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarAreaRequest) (*dto.AreaResponse, error) {
	a, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Área"}
	}
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		a.Nome = *req.Nome
	}
	if req.Icone != nil {
		a.Icone = req.Icone
	}
	if req.Descricao != nil {
		a.Descricao = req.Descricao
	}
	if req.Ativo != nil {
		a.Ativo = *req.Ativo
	}
	a.Processos = nil
	if err := s.repo.Atualizar(ctx, a); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "area_atualizada", "area", a.ID, adminID, nil)
	return montarAreaResponse(*a), nil
}

func (s *areaService) Desativar(ctx context.Context, adminID, id uuid.UUID) error {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "area_desativada", "area", id, adminID, nil)
	return nil
}

func (s *areaService) Reativar(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "area_reativada", "area", id, adminID, nil)
	return nil
}

func montarAreaResponse(a model.Area) *dto.AreaResponse {
	return &dto.AreaResponse{
		ID:        a.ID,
		Nome:      a.Nome,
		Icone:     a.Icone,
		Descricao: a.Descricao,
		Ativo:     a.Ativo,
	}
}

// ─── Shared audit helper ─────────────────────────────────────────────────────

// Auditor funnels fire-and-forget audit entries into the async queue. A nil
// dispatcher (unit tests) makes it a no-op.
type Auditor struct {
	enqueue func(ctx context.Context, payload interface{}) error
}

func NewAuditor(enqueue func(ctx context.Context, payload interface{}) error) *Auditor {
	return &Auditor{enqueue: enqueue}
}

func (a *Auditor) registrar(ctx context.Context, acao, entidade string, entidadeID, usuarioID uuid.UUID, detalhe *string) {
	if a == nil || a.enqueue == nil {
		return
	}
	eid := entidadeID.String()
	uid := usuarioID.String()
	payload := map[string]interface{}{
		"acao":        acao,
		"entidade":    entidade,
		"entidade_id": eid,
		"usuario_id":  uid,
	}
	if detalhe != nil {
		payload["detalhe"] = *detalhe
	}
	if err := a.enqueue(ctx, payload); err != nil {
		log.Warn().Err(err).Str("acao", acao).Msg("auditoria: falha ao enfileirar")
	}
}
