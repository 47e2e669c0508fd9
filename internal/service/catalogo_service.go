package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Redis cache keys for the aggregated catalog. Every catalog mutation
// invalidates both.
const (
	cacheKeyArvore   = "catalogo:arvore"
	cacheKeyServicos = "catalogo:servicos"
)

// CatalogoService aggregates the Area → Processo → Subprocesso → Servico
// hierarchy for browsing pages and serves the flat filtered catalog.
type CatalogoService interface {
	CarregarArvore(ctx context.Context) ([]dto.AreaArvore, error)
	CarregarAreaPorID(ctx context.Context, id uuid.UUID) (*dto.AreaArvore, error)
	ListarProcessos(ctx context.Context, areaID *uuid.UUID) ([]dto.ProcessoListItem, error)
	ListarSubprocessos(ctx context.Context, processoID *uuid.UUID) ([]dto.SubprocessoListItem, error)
	// ListarServicosCatalogo applies the cascading clear against the current
	// tree and then every active predicate of f.
	ListarServicosCatalogo(ctx context.Context, f dto.FiltroEstado) ([]dto.ServicoCatalogoItem, error)
	// InvalidarCache drops the cached tree and flat list. Called by every
	// mutating service after a successful write.
	InvalidarCache(ctx context.Context)
}

type catalogoService struct {
	areas        repository.AreaRepository
	processos    repository.ProcessoRepository
	subprocessos repository.SubprocessoRepository
	servicos     repository.ServicoRepository
	rdb          *redis.Client
	cacheTTL     time.Duration
}

// NewCatalogoService wires the aggregator. rdb may be nil (unit tests run
// without a cache).
func NewCatalogoService(
	areas repository.AreaRepository,
	processos repository.ProcessoRepository,
	subprocessos repository.SubprocessoRepository,
	servicos repository.ServicoRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) CatalogoService {
	return &catalogoService{
		areas:        areas,
		processos:    processos,
		subprocessos: subprocessos,
		servicos:     servicos,
		rdb:          rdb,
		cacheTTL:     cacheTTL,
	}
}

func (s *catalogoService) CarregarArvore(ctx context.Context) ([]dto.AreaArvore, error) {
	if cached, ok := cacheGet[[]dto.AreaArvore](ctx, s.rdb, cacheKeyArvore); ok {
		return cached, nil
	}

	areas, err := s.areas.ListarAtivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar árvore: %w", err)
	}

	arvore := make([]dto.AreaArvore, 0, len(areas))
	for _, area := range areas {
		node, err := s.montarAreaArvore(ctx, area)
		if err != nil {
			return nil, err
		}
		arvore = append(arvore, *node)
	}

	cacheSet(ctx, s.rdb, cacheKeyArvore, arvore, s.cacheTTL)
	return arvore, nil
}

func (s *catalogoService) CarregarAreaPorID(ctx context.Context, id uuid.UUID) (*dto.AreaArvore, error) {
	area, err := s.areas.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Área"}
	}
	if err != nil {
		return nil, err
	}
	if !area.Ativo {
		return nil, &NaoEncontradoError{Entidade: "Área"}
	}
	return s.montarAreaArvore(ctx, *area)
}

// montarAreaArvore walks one area level by level. Each level is an
// active-only, name-ordered fetch; QuantidadeServicos sums upward.
func (s *catalogoService) montarAreaArvore(ctx context.Context, area model.Area) (*dto.AreaArvore, error) {
	node := dto.AreaArvore{
		ID:        area.ID,
		Nome:      area.Nome,
		Icone:     area.Icone,
		Descricao: area.Descricao,
		Processos: []dto.ProcessoArvore{},
	}

	processos, err := s.processos.ListarAtivosPorArea(ctx, area.ID)
	if err != nil {
		return nil, fmt.Errorf("carregar processos de %s: %w", area.Nome, err)
	}
	for _, proc := range processos {
		procNode := dto.ProcessoArvore{
			ID:           proc.ID,
			Nome:         proc.Nome,
			Descricao:    proc.Descricao,
			Subprocessos: []dto.SubprocessoArvore{},
		}

		subprocessos, err := s.subprocessos.ListarAtivosPorProcesso(ctx, proc.ID)
		if err != nil {
			return nil, fmt.Errorf("carregar subprocessos de %s: %w", proc.Nome, err)
		}
		for _, sub := range subprocessos {
			subNode := dto.SubprocessoArvore{
				ID:        sub.ID,
				Nome:      sub.Nome,
				Descricao: sub.Descricao,
				Servicos:  []dto.ServicoCatalogoItem{},
			}

			servicos, err := s.servicos.ListarPorSubprocesso(ctx, sub.ID)
			if err != nil {
				return nil, fmt.Errorf("carregar serviços de %s: %w", sub.Nome, err)
			}
			for _, sv := range servicos {
				subNode.Servicos = append(subNode.Servicos, montarItemCatalogo(sv, area.Nome, proc.Nome, sub.Nome))
			}
			subNode.QuantidadeServicos = len(subNode.Servicos)
			procNode.QuantidadeServicos += subNode.QuantidadeServicos
			procNode.Subprocessos = append(procNode.Subprocessos, subNode)
		}

		node.QuantidadeServicos += procNode.QuantidadeServicos
		node.Processos = append(node.Processos, procNode)
	}
	return &node, nil
}

func (s *catalogoService) ListarProcessos(ctx context.Context, areaID *uuid.UUID) ([]dto.ProcessoListItem, error) {
	processos, err := s.processos.Listar(ctx, areaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcessoListItem, 0, len(processos))
	for _, p := range processos {
		item := dto.ProcessoListItem{
			ID:        p.ID,
			Nome:      p.Nome,
			Descricao: p.Descricao,
			AreaID:    p.AreaID,
		}
		if p.Area != nil {
			item.AreaNome = p.Area.Nome
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *catalogoService) ListarSubprocessos(ctx context.Context, processoID *uuid.UUID) ([]dto.SubprocessoListItem, error) {
	subprocessos, err := s.subprocessos.Listar(ctx, processoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubprocessoListItem, 0, len(subprocessos))
	for _, sub := range subprocessos {
		item := dto.SubprocessoListItem{
			ID:         sub.ID,
			Nome:       sub.Nome,
			Descricao:  sub.Descricao,
			ProcessoID: sub.ProcessoID,
		}
		if sub.Processo != nil {
			item.ProcessoNome = sub.Processo.Nome
			item.AreaID = sub.Processo.AreaID
			if sub.Processo.Area != nil {
				item.AreaNome = sub.Processo.Area.Nome
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *catalogoService) ListarServicosCatalogo(ctx context.Context, f dto.FiltroEstado) ([]dto.ServicoCatalogoItem, error) {
	itens, ok := cacheGet[[]dto.ServicoCatalogoItem](ctx, s.rdb, cacheKeyServicos)
	if !ok {
		servicos, err := s.servicos.ListarAtivos(ctx)
		if err != nil {
			return nil, fmt.Errorf("listar serviços: %w", err)
		}
		itens = make([]dto.ServicoCatalogoItem, 0, len(servicos))
		for _, sv := range servicos {
			var areaNome, procNome, subNome string
			if sv.Subprocesso != nil {
				subNome = sv.Subprocesso.Nome
				if sv.Subprocesso.Processo != nil {
					procNome = sv.Subprocesso.Processo.Nome
					if sv.Subprocesso.Processo.Area != nil {
						areaNome = sv.Subprocesso.Processo.Area.Nome
					}
				}
			}
			itens = append(itens, montarItemCatalogo(sv, areaNome, procNome, subNome))
		}
		cacheSet(ctx, s.rdb, cacheKeyServicos, itens, s.cacheTTL)
	}

	arvore, err := s.CarregarArvore(ctx)
	if err != nil {
		return nil, err
	}
	f = AplicarCascata(arvore, f)
	return FiltrarServicos(itens, f), nil
}

func (s *catalogoService) InvalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKeyArvore, cacheKeyServicos).Err(); err != nil {
		log.Warn().Err(err).Msg("catalogo: cache invalidation failed")
	}
}

func montarItemCatalogo(sv model.Servico, area, processo, subprocesso string) dto.ServicoCatalogoItem {
	return dto.ServicoCatalogoItem{
		ID:            sv.ID,
		Nome:          sv.Nome,
		Area:          area,
		Processo:      processo,
		Subprocesso:   subprocesso,
		DemandaRotina: sv.DemandaRotina,
		Status:        sv.Status,
		SLA:           sv.SLA,
		TempoMedio:    sv.TempoMedio,
	}
}

// ─── Cache helpers ───────────────────────────────────────────────────────────

// cacheGet reads and decodes a cached value; any miss or decode failure is
// treated as a cache miss.
func cacheGet[T any](ctx context.Context, rdb *redis.Client, key string) (T, bool) {
	var zero T
	if rdb == nil {
		return zero, false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("catalogo: corrupt cache entry — ignoring")
		return zero, false
	}
	return out, true
}

// cacheSet stores a value best-effort; failures only log.
func cacheSet(ctx context.Context, rdb *redis.Client, key string, v interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("catalogo: cache write failed")
	}
}
