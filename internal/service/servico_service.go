package service

// servico_service.go — admin CRUD for catalog entries. Updates snapshot the
// superseded version into servicos_historico and bump Versao inside the same
// transaction as the write.

import (
	"context"
	"errors"
	"time"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicoService interface {
	Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarServicoRequest) (*dto.ServicoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ServicoResponse, error)
	Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarServicoRequest) (*dto.ServicoResponse, error)
	Desativar(ctx context.Context, adminID, id uuid.UUID) error
	Reativar(ctx context.Context, adminID, id uuid.UUID) error
	ListarHistorico(ctx context.Context, id uuid.UUID) ([]dto.ServicoHistoricoResponse, error)
}

type servicoService struct {
	repo         repository.ServicoRepository
	subprocessos repository.SubprocessoRepository
	catalogo     CatalogoService
	auditor      *Auditor
}

func NewServicoService(repo repository.ServicoRepository, subprocessos repository.SubprocessoRepository, catalogo CatalogoService, auditor *Auditor) ServicoService {
	return &servicoService{repo: repo, subprocessos: subprocessos, catalogo: catalogo, auditor: auditor}
}

func (s *servicoService) Criar(ctx context.Context, adminID uuid.UUID, req dto.CriarServicoRequest) (*dto.ServicoResponse, error) {
	subprocessoID, err := uuid.Parse(req.SubprocessoID)
	if err != nil {
		return nil, novaValidacao("subprocesso_id", "uuid inválido")
	}
	sub, err := s.subprocessos.ObterPorID(ctx, subprocessoID)
	if err != nil || !sub.Ativo {
		return nil, &NaoEncontradoError{Entidade: "Subprocesso"}
	}

	sv := model.Servico{
		Nome:                   req.Nome,
		OQueE:                  req.OQueE,
		QuemPodeUtilizar:       req.QuemPodeUtilizar,
		RequisitosOperacionais: req.RequisitosOperacionais,
		Observacoes:            req.Observacoes,
		TempoMedio:             req.TempoMedio,
		TempoMedioUnidade:      req.TempoMedioUnidade,
		SLA:                    req.SLA,
		SLI:                    req.SLI,
		Ano:                    req.Ano,
		DemandaRotina:          req.DemandaRotina,
		Status:                 "ativo",
		Versao:                 1,
		SubprocessoID:          subprocessoID,
		CriadoPor:              adminID,
		Ativo:                  true,
	}
	if err := s.repo.Criar(ctx, &sv); err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "servico_criado", "servico", sv.ID, adminID, nil)

	sv.Subprocesso = sub
	return montarServicoResponse(sv), nil
}

func (s *servicoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ServicoResponse, error) {
	sv, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Serviço"}
	}
	if err != nil {
		return nil, err
	}
	return montarServicoResponse(*sv), nil
}

func (s *servicoService) Atualizar(ctx context.Context, adminID, id uuid.UUID, req dto.AtualizarServicoRequest) (*dto.ServicoResponse, error) {
	sv, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Serviço"}
	}
	if err != nil {
		return nil, err
	}

	if req.SubprocessoID != nil {
		subprocessoID, err := uuid.Parse(*req.SubprocessoID)
		if err != nil {
			return nil, novaValidacao("subprocesso_id", "uuid inválido")
		}
		sub, err := s.subprocessos.ObterPorID(ctx, subprocessoID)
		if err != nil || !sub.Ativo {
			return nil, &NaoEncontradoError{Entidade: "Subprocesso"}
		}
		sv.SubprocessoID = subprocessoID
	}

	err = runTx(s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CriarHistoricoTx(tx, snapshotServico(sv, adminID)); err != nil {
			return err
		}
		aplicarAtualizacaoServico(sv, req)
		sv.Versao++
		sv.Subprocesso = nil
		return s.repo.AtualizarTx(tx, sv)
	})
	if err != nil {
		return nil, err
	}

	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "servico_atualizado", "servico", sv.ID, adminID, nil)
	return s.ObterPorID(ctx, id)
}

func aplicarAtualizacaoServico(sv *model.Servico, req dto.AtualizarServicoRequest) {
	if req.Nome != nil {
		sv.Nome = *req.Nome
	}
	if req.OQueE != nil {
		sv.OQueE = req.OQueE
	}
	if req.QuemPodeUtilizar != nil {
		sv.QuemPodeUtilizar = req.QuemPodeUtilizar
	}
	if req.RequisitosOperacionais != nil {
		sv.RequisitosOperacionais = req.RequisitosOperacionais
	}
	if req.Observacoes != nil {
		sv.Observacoes = req.Observacoes
	}
	if req.TempoMedio != nil {
		sv.TempoMedio = req.TempoMedio
	}
	if req.TempoMedioUnidade != nil {
		sv.TempoMedioUnidade = req.TempoMedioUnidade
	}
	if req.SLA != nil {
		sv.SLA = req.SLA
	}
	if req.SLI != nil {
		sv.SLI = req.SLI
	}
	if req.Ano != nil {
		sv.Ano = req.Ano
	}
	if req.DemandaRotina != nil {
		sv.DemandaRotina = *req.DemandaRotina
	}
	if req.Status != nil {
		sv.Status = *req.Status
	}
}

func (s *servicoService) Desativar(ctx context.Context, adminID, id uuid.UUID) error {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "servico_desativado", "servico", id, adminID, nil)
	return nil
}

func (s *servicoService) Reativar(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.catalogo.InvalidarCache(ctx)
	s.auditor.registrar(ctx, "servico_reativado", "servico", id, adminID, nil)
	return nil
}

func (s *servicoService) ListarHistorico(ctx context.Context, id uuid.UUID) ([]dto.ServicoHistoricoResponse, error) {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return nil, err
	}
	list, err := s.repo.ListarHistorico(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServicoHistoricoResponse, 0, len(list))
	for _, h := range list {
		out = append(out, dto.ServicoHistoricoResponse{
			Versao:        h.Versao,
			Nome:          h.Nome,
			SLA:           h.SLA,
			SLI:           h.SLI,
			DemandaRotina: h.DemandaRotina,
			Status:        h.Status,
			AlteradoPor:   h.AlteradoPor.String(),
			CreatedAt:     h.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func montarServicoResponse(sv model.Servico) *dto.ServicoResponse {
	resp := &dto.ServicoResponse{
		ID:                     sv.ID,
		Nome:                   sv.Nome,
		OQueE:                  sv.OQueE,
		QuemPodeUtilizar:       sv.QuemPodeUtilizar,
		RequisitosOperacionais: sv.RequisitosOperacionais,
		Observacoes:            sv.Observacoes,
		TempoMedio:             sv.TempoMedio,
		TempoMedioUnidade:      sv.TempoMedioUnidade,
		SLA:                    sv.SLA,
		SLI:                    sv.SLI,
		Ano:                    sv.Ano,
		DemandaRotina:          sv.DemandaRotina,
		Status:                 sv.Status,
		Versao:                 sv.Versao,
		SubprocessoID:          sv.SubprocessoID,
		CreatedAt:              sv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              sv.UpdatedAt.Format(time.RFC3339),
	}
	if sv.Subprocesso != nil {
		resp.Subprocesso = sv.Subprocesso.Nome
		if sv.Subprocesso.Processo != nil {
			resp.Processo = sv.Subprocesso.Processo.Nome
			if sv.Subprocesso.Processo.Area != nil {
				resp.Area = sv.Subprocesso.Processo.Area.Nome
			}
		}
	}
	return resp
}
