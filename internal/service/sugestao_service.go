package service

// sugestao_service.go — suggestion intake and the admin decision that applies
// an approved change to the catalog. Approval runs the catalog mutation and
// the status flip in a single transaction; a write failure leaves the
// suggestion pendente.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"
	"catalogoservicos/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// valorNaoInformado fills optional descriptive fields left blank by the
// suggester when an approved creation materializes a catalog entry.
const valorNaoInformado = "não informado"

type SugestaoService interface {
	Criar(ctx context.Context, criadoPor uuid.UUID, req dto.CriarSugestaoRequest) (*dto.SugestaoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.SugestaoResponse, error)
	Listar(ctx context.Context, filter dto.SugestaoFilter) ([]dto.SugestaoResponse, error)
	ListarMinhas(ctx context.Context, criadoPor uuid.UUID) ([]dto.SugestaoResponse, error)
	Resolver(ctx context.Context, id, adminID uuid.UUID, req dto.ResolverSugestaoRequest) (*dto.SugestaoResponse, error)
}

type sugestaoService struct {
	sugestoes     repository.SugestaoRepository
	areas         repository.AreaRepository
	processos     repository.ProcessoRepository
	subprocessos  repository.SubprocessoRepository
	servicos      repository.ServicoRepository
	profiles      repository.ProfileRepository
	configuracoes repository.ConfiguracaoRepository
	catalogo      CatalogoService
	dispatcher    *worker.Dispatcher
}

// NewSugestaoService wires the workflow. dispatcher may be nil (unit tests
// skip async side effects).
func NewSugestaoService(
	sugestoes repository.SugestaoRepository,
	areas repository.AreaRepository,
	processos repository.ProcessoRepository,
	subprocessos repository.SubprocessoRepository,
	servicos repository.ServicoRepository,
	profiles repository.ProfileRepository,
	configuracoes repository.ConfiguracaoRepository,
	catalogo CatalogoService,
	dispatcher *worker.Dispatcher,
) SugestaoService {
	return &sugestaoService{
		sugestoes:     sugestoes,
		areas:         areas,
		processos:     processos,
		subprocessos:  subprocessos,
		servicos:      servicos,
		profiles:      profiles,
		configuracoes: configuracoes,
		catalogo:      catalogo,
		dispatcher:    dispatcher,
	}
}

// ─── Intake ──────────────────────────────────────────────────────────────────

func (s *sugestaoService) Criar(ctx context.Context, criadoPor uuid.UUID, req dto.CriarSugestaoRequest) (*dto.SugestaoResponse, error) {
	cfg, err := s.configuracoes.Obter(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.SugestoesAbertas {
		return nil, ErrSugestoesFechadas
	}

	if err := s.validarPayload(ctx, req.Tipo, req.Payload); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("codificar payload: %w", err)
	}

	sug := model.Sugestao{
		Tipo:          req.Tipo,
		Status:        dto.StatusPendente,
		Escopo:        req.Payload.Escopo,
		Payload:       string(encoded),
		Justificativa: req.Justificativa,
		CriadoPor:     criadoPor,
	}
	if err := s.sugestoes.Criar(ctx, &sug); err != nil {
		return nil, err
	}

	s.auditar(ctx, "sugestao_criada", sug.ID, criadoPor, nil)
	return montarSugestaoResponse(sug)
}

// validarPayload enforces the scope-dependent shape of the tagged union.
// Which hierarchy anchors are mandatory grows one per level; edits
// additionally require the target entity. Anchors must reference active rows.
func (s *sugestaoService) validarPayload(ctx context.Context, tipo string, p dto.SugestaoPayload) error {
	modoEsperado := dto.ModoCriacao
	if tipo == dto.TipoEdicao {
		modoEsperado = dto.ModoEdicao
	}
	if p.Modo != modoEsperado {
		return novaValidacao("payload.modo", fmt.Sprintf("modo %q incompatível com tipo %q", p.Modo, tipo))
	}

	if p.Modo == dto.ModoCriacao && p.Nome == "" {
		return novaValidacao("payload.nome", "obrigatório para criação")
	}
	if p.Modo == dto.ModoEdicao && p.AlvoID == nil {
		return novaValidacao("payload.alvo_id", "obrigatório para edição")
	}

	switch p.Escopo {
	case dto.EscopoArea:
		// no anchors
	case dto.EscopoProcesso:
		if p.AreaID == nil {
			return novaValidacao("payload.area_id", "obrigatório para escopo processo")
		}
	case dto.EscopoSubprocesso:
		if p.AreaID == nil || p.ProcessoID == nil {
			return novaValidacao("payload", "area_id e processo_id são obrigatórios para escopo subprocesso")
		}
	case dto.EscopoServico:
		if p.AreaID == nil || p.ProcessoID == nil || p.SubprocessoID == nil {
			return novaValidacao("payload", "area_id, processo_id e subprocesso_id são obrigatórios para escopo serviço")
		}
	default:
		return novaValidacao("payload.escopo", "escopo desconhecido")
	}

	return s.verificarAncoras(ctx, p)
}

func (s *sugestaoService) verificarAncoras(ctx context.Context, p dto.SugestaoPayload) error {
	if p.AreaID != nil {
		area, err := s.areas.ObterPorID(ctx, *p.AreaID)
		if err != nil || !area.Ativo {
			return &NaoEncontradoError{Entidade: "Área"}
		}
	}
	if p.ProcessoID != nil {
		proc, err := s.processos.ObterPorID(ctx, *p.ProcessoID)
		if err != nil || !proc.Ativo {
			return &NaoEncontradoError{Entidade: "Processo"}
		}
	}
	if p.SubprocessoID != nil {
		sub, err := s.subprocessos.ObterPorID(ctx, *p.SubprocessoID)
		if err != nil || !sub.Ativo {
			return &NaoEncontradoError{Entidade: "Subprocesso"}
		}
	}
	if p.AlvoID != nil {
		if err := s.verificarAlvo(ctx, p.Escopo, *p.AlvoID); err != nil {
			return err
		}
	}
	return nil
}

func (s *sugestaoService) verificarAlvo(ctx context.Context, escopo string, alvoID uuid.UUID) error {
	switch escopo {
	case dto.EscopoArea:
		if a, err := s.areas.ObterPorID(ctx, alvoID); err != nil || !a.Ativo {
			return &NaoEncontradoError{Entidade: "Área"}
		}
	case dto.EscopoProcesso:
		if p, err := s.processos.ObterPorID(ctx, alvoID); err != nil || !p.Ativo {
			return &NaoEncontradoError{Entidade: "Processo"}
		}
	case dto.EscopoSubprocesso:
		if sp, err := s.subprocessos.ObterPorID(ctx, alvoID); err != nil || !sp.Ativo {
			return &NaoEncontradoError{Entidade: "Subprocesso"}
		}
	case dto.EscopoServico:
		if sv, err := s.servicos.ObterPorID(ctx, alvoID); err != nil || !sv.Ativo {
			return &NaoEncontradoError{Entidade: "Serviço"}
		}
	}
	return nil
}

// ─── Queries ─────────────────────────────────────────────────────────────────

func (s *sugestaoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.SugestaoResponse, error) {
	sug, err := s.sugestoes.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Sugestão"}
	}
	if err != nil {
		return nil, err
	}
	return montarSugestaoResponse(*sug)
}

func (s *sugestaoService) Listar(ctx context.Context, filter dto.SugestaoFilter) ([]dto.SugestaoResponse, error) {
	list, err := s.sugestoes.Listar(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	return montarSugestaoResponses(list)
}

func (s *sugestaoService) ListarMinhas(ctx context.Context, criadoPor uuid.UUID) ([]dto.SugestaoResponse, error) {
	list, err := s.sugestoes.ListarPorCriador(ctx, criadoPor)
	if err != nil {
		return nil, err
	}
	return montarSugestaoResponses(list)
}

// ─── Decision ────────────────────────────────────────────────────────────────

func (s *sugestaoService) Resolver(ctx context.Context, id, adminID uuid.UUID, req dto.ResolverSugestaoRequest) (*dto.SugestaoResponse, error) {
	sug, err := s.sugestoes.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NaoEncontradoError{Entidade: "Sugestão"}
	}
	if err != nil {
		return nil, err
	}
	if sug.Status != dto.StatusPendente {
		return nil, ErrSugestaoJaResolvida
	}
	if req.Decisao == dto.StatusRejeitada && (req.ComentarioAdmin == nil || *req.ComentarioAdmin == "") {
		return nil, novaValidacao("comentario_admin", "obrigatório ao rejeitar")
	}

	var payload dto.SugestaoPayload
	if err := json.Unmarshal([]byte(sug.Payload), &payload); err != nil {
		return nil, fmt.Errorf("payload da sugestão %s corrompido: %w", sug.ID, err)
	}

	err = runTx(s.sugestoes.DB(), func(tx *gorm.DB) error {
		if req.Decisao == dto.StatusAprovada {
			if err := s.aplicar(ctx, tx, sug, payload, adminID); err != nil {
				return err
			}
		}
		sug.Status = req.Decisao
		sug.ComentarioAdmin = req.ComentarioAdmin
		sug.AprovadoPor = &adminID
		return s.sugestoes.AtualizarTx(tx, sug)
	})
	if err != nil {
		return nil, err
	}

	if req.Decisao == dto.StatusAprovada {
		s.catalogo.InvalidarCache(ctx)
	}
	s.auditar(ctx, "sugestao_"+req.Decisao, sug.ID, adminID, req.ComentarioAdmin)
	s.notificarCriador(ctx, sug, req.Decisao)

	return montarSugestaoResponse(*sug)
}

// aplicar materializes the approved change inside the decision transaction.
func (s *sugestaoService) aplicar(ctx context.Context, tx *gorm.DB, sug *model.Sugestao, p dto.SugestaoPayload, adminID uuid.UUID) error {
	switch {
	case p.Escopo == dto.EscopoArea && p.Modo == dto.ModoCriacao:
		a := model.Area{Nome: p.Nome, Icone: p.Icone, Descricao: ouNaoInformado(p.Descricao), Ativo: true}
		if err := s.areas.CriarTx(tx, &a); err != nil {
			return &AplicacaoError{Entidade: "Área", Err: err}
		}

	case p.Escopo == dto.EscopoArea && p.Modo == dto.ModoEdicao:
		a, err := s.areas.ObterPorIDTx(tx, *p.AlvoID)
		if err != nil {
			return &AplicacaoError{Entidade: "Área", Err: err}
		}
		if p.Nome != "" {
			a.Nome = p.Nome
		}
		if p.Icone != nil {
			a.Icone = p.Icone
		}
		if p.Descricao != nil {
			a.Descricao = p.Descricao
		}
		if err := s.areas.AtualizarTx(tx, a); err != nil {
			return &AplicacaoError{Entidade: "Área", Err: err}
		}

	case p.Escopo == dto.EscopoProcesso && p.Modo == dto.ModoCriacao:
		proc := model.Processo{Nome: p.Nome, Descricao: ouNaoInformado(p.Descricao), AreaID: *p.AreaID, Ativo: true}
		if err := s.processos.CriarTx(tx, &proc); err != nil {
			return &AplicacaoError{Entidade: "Processo", Err: err}
		}

	case p.Escopo == dto.EscopoProcesso && p.Modo == dto.ModoEdicao:
		proc, err := s.processos.ObterPorIDTx(tx, *p.AlvoID)
		if err != nil {
			return &AplicacaoError{Entidade: "Processo", Err: err}
		}
		if p.Nome != "" {
			proc.Nome = p.Nome
		}
		if p.Descricao != nil {
			proc.Descricao = p.Descricao
		}
		proc.Area = nil
		if err := s.processos.AtualizarTx(tx, proc); err != nil {
			return &AplicacaoError{Entidade: "Processo", Err: err}
		}

	case p.Escopo == dto.EscopoSubprocesso && p.Modo == dto.ModoCriacao:
		sub := model.Subprocesso{Nome: p.Nome, Descricao: ouNaoInformado(p.Descricao), ProcessoID: *p.ProcessoID, Ativo: true}
		if err := s.subprocessos.CriarTx(tx, &sub); err != nil {
			return &AplicacaoError{Entidade: "Subprocesso", Err: err}
		}

	case p.Escopo == dto.EscopoSubprocesso && p.Modo == dto.ModoEdicao:
		sub, err := s.subprocessos.ObterPorIDTx(tx, *p.AlvoID)
		if err != nil {
			return &AplicacaoError{Entidade: "Subprocesso", Err: err}
		}
		if p.Nome != "" {
			sub.Nome = p.Nome
		}
		if p.Descricao != nil {
			sub.Descricao = p.Descricao
		}
		sub.Processo = nil
		if err := s.subprocessos.AtualizarTx(tx, sub); err != nil {
			return &AplicacaoError{Entidade: "Subprocesso", Err: err}
		}

	case p.Escopo == dto.EscopoServico && p.Modo == dto.ModoCriacao:
		sv := montarServicoDeSugestao(p, sug.CriadoPor)
		if err := s.servicos.CriarTx(tx, sv); err != nil {
			return &AplicacaoError{Entidade: "Serviço", Err: err}
		}

	case p.Escopo == dto.EscopoServico && p.Modo == dto.ModoEdicao:
		sv, err := s.servicos.ObterPorIDTx(tx, *p.AlvoID)
		if err != nil {
			return &AplicacaoError{Entidade: "Serviço", Err: err}
		}
		if err := s.servicos.CriarHistoricoTx(tx, snapshotServico(sv, adminID)); err != nil {
			return &AplicacaoError{Entidade: "Serviço", Err: err}
		}
		aplicarEdicaoServico(sv, p)
		sv.Versao++
		sv.Subprocesso = nil
		if err := s.servicos.AtualizarTx(tx, sv); err != nil {
			return &AplicacaoError{Entidade: "Serviço", Err: err}
		}

	default:
		return novaValidacao("payload", "combinação escopo/modo desconhecida")
	}
	return nil
}

// ouNaoInformado fills an optional descriptive field left blank by the
// suggester.
func ouNaoInformado(v *string) *string {
	if v != nil {
		return v
	}
	s := valorNaoInformado
	return &s
}

// montarServicoDeSugestao builds a new catalog entry from an approved
// creation; optional descriptive fields left blank default to "não informado".
func montarServicoDeSugestao(p dto.SugestaoPayload, criadoPor uuid.UUID) *model.Servico {
	sv := &model.Servico{
		Nome:                   p.Nome,
		OQueE:                  ouNaoInformado(p.OQueE),
		QuemPodeUtilizar:       ouNaoInformado(p.QuemPodeUtilizar),
		RequisitosOperacionais: ouNaoInformado(p.RequisitosOperacionais),
		Observacoes:            ouNaoInformado(p.Observacoes),
		TempoMedio:             p.TempoMedio,
		TempoMedioUnidade:      p.TempoMedioUnidade,
		SLA:                    p.SLA,
		SLI:                    p.SLI,
		Ano:                    p.Ano,
		DemandaRotina:          "demanda",
		Status:                 "ativo",
		Versao:                 1,
		SubprocessoID:          *p.SubprocessoID,
		CriadoPor:              criadoPor,
		Ativo:                  true,
	}
	if p.DemandaRotina != nil {
		sv.DemandaRotina = *p.DemandaRotina
	}
	return sv
}

func aplicarEdicaoServico(sv *model.Servico, p dto.SugestaoPayload) {
	if p.Nome != "" {
		sv.Nome = p.Nome
	}
	if p.OQueE != nil {
		sv.OQueE = p.OQueE
	}
	if p.QuemPodeUtilizar != nil {
		sv.QuemPodeUtilizar = p.QuemPodeUtilizar
	}
	if p.RequisitosOperacionais != nil {
		sv.RequisitosOperacionais = p.RequisitosOperacionais
	}
	if p.Observacoes != nil {
		sv.Observacoes = p.Observacoes
	}
	if p.TempoMedio != nil {
		sv.TempoMedio = p.TempoMedio
	}
	if p.TempoMedioUnidade != nil {
		sv.TempoMedioUnidade = p.TempoMedioUnidade
	}
	if p.SLA != nil {
		sv.SLA = p.SLA
	}
	if p.SLI != nil {
		sv.SLI = p.SLI
	}
	if p.Ano != nil {
		sv.Ano = p.Ano
	}
	if p.DemandaRotina != nil {
		sv.DemandaRotina = *p.DemandaRotina
	}
}

// snapshotServico freezes the current version before an edit supersedes it.
func snapshotServico(sv *model.Servico, alteradoPor uuid.UUID) *model.ServicoHistorico {
	return &model.ServicoHistorico{
		ServicoID:              sv.ID,
		Versao:                 sv.Versao,
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
		AlteradoPor:            alteradoPor,
	}
}

// ─── Async side effects ──────────────────────────────────────────────────────

func (s *sugestaoService) auditar(ctx context.Context, acao string, sugestaoID, usuarioID uuid.UUID, detalhe *string) {
	if s.dispatcher == nil {
		return
	}
	entidadeID := sugestaoID.String()
	usuario := usuarioID.String()
	err := s.dispatcher.EnqueueAuditoria(ctx, worker.AuditoriaJobPayload{
		Acao:       acao,
		Entidade:   "sugestao",
		EntidadeID: &entidadeID,
		UsuarioID:  &usuario,
		Detalhe:    detalhe,
	})
	if err != nil {
		log.Warn().Err(err).Str("acao", acao).Msg("sugestao: falha ao enfileirar auditoria")
	}
}

func (s *sugestaoService) notificarCriador(ctx context.Context, sug *model.Sugestao, decisao string) {
	if s.dispatcher == nil {
		return
	}
	criador, err := s.profiles.ObterPorID(ctx, sug.CriadoPor)
	if err != nil {
		log.Warn().Err(err).Str("sugestao_id", sug.ID.String()).Msg("sugestao: criador não encontrado para notificação")
		return
	}

	assunto := fmt.Sprintf("Sua sugestão foi %s", decisao)
	corpo := fmt.Sprintf("Olá %s,\n\nSua sugestão (%s / %s) foi %s.", criador.Nome, sug.Tipo, sug.Escopo, decisao)
	if sug.ComentarioAdmin != nil && *sug.ComentarioAdmin != "" {
		corpo += fmt.Sprintf("\n\nComentário do administrador: %s", *sug.ComentarioAdmin)
	}

	err = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: criador.Email,
		Subject: assunto,
		Body:    corpo,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sugestao: falha ao enfileirar email de notificação")
	}
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func montarSugestaoResponse(sug model.Sugestao) (*dto.SugestaoResponse, error) {
	var payload dto.SugestaoPayload
	if err := json.Unmarshal([]byte(sug.Payload), &payload); err != nil {
		return nil, fmt.Errorf("payload da sugestão %s corrompido: %w", sug.ID, err)
	}
	return &dto.SugestaoResponse{
		ID:              sug.ID,
		Tipo:            sug.Tipo,
		Status:          sug.Status,
		Escopo:          sug.Escopo,
		Payload:         payload,
		Justificativa:   sug.Justificativa,
		ComentarioAdmin: sug.ComentarioAdmin,
		CriadoPor:       sug.CriadoPor,
		AprovadoPor:     sug.AprovadoPor,
		CreatedAt:       sug.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       sug.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func montarSugestaoResponses(list []model.Sugestao) ([]dto.SugestaoResponse, error) {
	out := make([]dto.SugestaoResponse, 0, len(list))
	for _, sug := range list {
		resp, err := montarSugestaoResponse(sug)
		if err != nil {
			log.Warn().Err(err).Msg("sugestao: entrada ignorada na listagem")
			continue
		}
		out = append(out, *resp)
	}
	return out, nil
}
