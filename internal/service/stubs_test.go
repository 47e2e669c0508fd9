package service

// In-memory repository stubs shared by the service tests. Transactions run
// with a nil *gorm.DB (see runTx), so the Tx variants ignore their argument.

import (
	"context"
	"sort"

	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Areas ─────────────────────────────────────────────────────────────────────

type stubAreaRepo struct {
	areas map[uuid.UUID]*model.Area
}

func newStubAreaRepo() *stubAreaRepo {
	return &stubAreaRepo{areas: make(map[uuid.UUID]*model.Area)}
}

func (r *stubAreaRepo) Criar(_ context.Context, a *model.Area) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.areas[a.ID] = a
	return nil
}

func (r *stubAreaRepo) CriarTx(_ *gorm.DB, a *model.Area) error {
	return r.Criar(context.Background(), a)
}

func (r *stubAreaRepo) ListarAtivas(_ context.Context) ([]model.Area, error) {
	var out []model.Area
	for _, a := range r.areas {
		if a.Ativo {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubAreaRepo) ListarTodas(_ context.Context) ([]model.Area, error) {
	var out []model.Area
	for _, a := range r.areas {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubAreaRepo) ObterPorID(_ context.Context, id uuid.UUID) (*model.Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubAreaRepo) ObterPorIDTx(_ *gorm.DB, id uuid.UUID) (*model.Area, error) {
	return r.ObterPorID(context.Background(), id)
}

func (r *stubAreaRepo) ObterPorNome(_ context.Context, nome string) (*model.Area, error) {
	for _, a := range r.areas {
		if a.Nome == nome {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAreaRepo) Atualizar(_ context.Context, a *model.Area) error {
	r.areas[a.ID] = a
	return nil
}

func (r *stubAreaRepo) AtualizarTx(_ *gorm.DB, a *model.Area) error {
	r.areas[a.ID] = a
	return nil
}

func (r *stubAreaRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if a, ok := r.areas[id]; ok {
		a.Ativo = false
	}
	return nil
}

func (r *stubAreaRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if a, ok := r.areas[id]; ok {
		a.Ativo = true
	}
	return nil
}

var _ repository.AreaRepository = (*stubAreaRepo)(nil)

// ── Processos ─────────────────────────────────────────────────────────────────

type stubProcessoRepo struct {
	processos map[uuid.UUID]*model.Processo
	areas     *stubAreaRepo
}

func newStubProcessoRepo(areas *stubAreaRepo) *stubProcessoRepo {
	return &stubProcessoRepo{processos: make(map[uuid.UUID]*model.Processo), areas: areas}
}

func (r *stubProcessoRepo) Criar(_ context.Context, p *model.Processo) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.processos[p.ID] = p
	return nil
}

func (r *stubProcessoRepo) CriarTx(_ *gorm.DB, p *model.Processo) error {
	return r.Criar(context.Background(), p)
}

func (r *stubProcessoRepo) ListarAtivosPorArea(_ context.Context, areaID uuid.UUID) ([]model.Processo, error) {
	var out []model.Processo
	for _, p := range r.processos {
		if p.Ativo && p.AreaID == areaID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubProcessoRepo) Listar(ctx context.Context, areaID *uuid.UUID) ([]model.Processo, error) {
	var out []model.Processo
	for _, p := range r.processos {
		if !p.Ativo {
			continue
		}
		if areaID != nil && p.AreaID != *areaID {
			continue
		}
		cp := *p
		if area, err := r.areas.ObterPorID(ctx, p.AreaID); err == nil {
			cp.Area = area
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubProcessoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Processo, error) {
	p, ok := r.processos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	if area, err := r.areas.ObterPorID(ctx, p.AreaID); err == nil {
		cp.Area = area
	}
	return &cp, nil
}

func (r *stubProcessoRepo) ObterPorIDTx(_ *gorm.DB, id uuid.UUID) (*model.Processo, error) {
	return r.ObterPorID(context.Background(), id)
}

func (r *stubProcessoRepo) Atualizar(_ context.Context, p *model.Processo) error {
	r.processos[p.ID] = p
	return nil
}

func (r *stubProcessoRepo) AtualizarTx(_ *gorm.DB, p *model.Processo) error {
	r.processos[p.ID] = p
	return nil
}

func (r *stubProcessoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.processos[id]; ok {
		p.Ativo = false
	}
	return nil
}

func (r *stubProcessoRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.processos[id]; ok {
		p.Ativo = true
	}
	return nil
}

var _ repository.ProcessoRepository = (*stubProcessoRepo)(nil)

// ── Subprocessos ──────────────────────────────────────────────────────────────

type stubSubprocessoRepo struct {
	subprocessos map[uuid.UUID]*model.Subprocesso
	processos    *stubProcessoRepo
}

func newStubSubprocessoRepo(processos *stubProcessoRepo) *stubSubprocessoRepo {
	return &stubSubprocessoRepo{subprocessos: make(map[uuid.UUID]*model.Subprocesso), processos: processos}
}

func (r *stubSubprocessoRepo) Criar(_ context.Context, s *model.Subprocesso) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.subprocessos[s.ID] = s
	return nil
}

func (r *stubSubprocessoRepo) CriarTx(_ *gorm.DB, s *model.Subprocesso) error {
	return r.Criar(context.Background(), s)
}

func (r *stubSubprocessoRepo) ListarAtivosPorProcesso(_ context.Context, processoID uuid.UUID) ([]model.Subprocesso, error) {
	var out []model.Subprocesso
	for _, s := range r.subprocessos {
		if s.Ativo && s.ProcessoID == processoID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubSubprocessoRepo) Listar(ctx context.Context, processoID *uuid.UUID) ([]model.Subprocesso, error) {
	var out []model.Subprocesso
	for _, s := range r.subprocessos {
		if !s.Ativo {
			continue
		}
		if processoID != nil && s.ProcessoID != *processoID {
			continue
		}
		cp := *s
		if proc, err := r.processos.ObterPorID(ctx, s.ProcessoID); err == nil {
			cp.Processo = proc
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubSubprocessoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Subprocesso, error) {
	s, ok := r.subprocessos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	if proc, err := r.processos.ObterPorID(ctx, s.ProcessoID); err == nil {
		cp.Processo = proc
	}
	return &cp, nil
}

func (r *stubSubprocessoRepo) ObterPorIDTx(_ *gorm.DB, id uuid.UUID) (*model.Subprocesso, error) {
	return r.ObterPorID(context.Background(), id)
}

func (r *stubSubprocessoRepo) Atualizar(_ context.Context, s *model.Subprocesso) error {
	r.subprocessos[s.ID] = s
	return nil
}

func (r *stubSubprocessoRepo) AtualizarTx(_ *gorm.DB, s *model.Subprocesso) error {
	r.subprocessos[s.ID] = s
	return nil
}

func (r *stubSubprocessoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if s, ok := r.subprocessos[id]; ok {
		s.Ativo = false
	}
	return nil
}

func (r *stubSubprocessoRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if s, ok := r.subprocessos[id]; ok {
		s.Ativo = true
	}
	return nil
}

var _ repository.SubprocessoRepository = (*stubSubprocessoRepo)(nil)

// ── Servicos ──────────────────────────────────────────────────────────────────

type stubServicoRepo struct {
	servicos     map[uuid.UUID]*model.Servico
	historico    []model.ServicoHistorico
	subprocessos *stubSubprocessoRepo
	leiturasTx   int
}

func newStubServicoRepo(subprocessos *stubSubprocessoRepo) *stubServicoRepo {
	return &stubServicoRepo{servicos: make(map[uuid.UUID]*model.Servico), subprocessos: subprocessos}
}

func (r *stubServicoRepo) Criar(_ context.Context, s *model.Servico) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicos[s.ID] = s
	return nil
}

func (r *stubServicoRepo) CriarTx(_ *gorm.DB, s *model.Servico) error {
	return r.Criar(context.Background(), s)
}

func (r *stubServicoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Servico, error) {
	s, ok := r.servicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	if sub, err := r.subprocessos.ObterPorID(ctx, s.SubprocessoID); err == nil {
		cp.Subprocesso = sub
	}
	return &cp, nil
}

func (r *stubServicoRepo) ObterPorIDTx(_ *gorm.DB, id uuid.UUID) (*model.Servico, error) {
	r.leiturasTx++
	s, ok := r.servicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubServicoRepo) ListarPorSubprocesso(_ context.Context, subprocessoID uuid.UUID) ([]model.Servico, error) {
	var out []model.Servico
	for _, s := range r.servicos {
		if s.Ativo && s.SubprocessoID == subprocessoID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubServicoRepo) ListarAtivos(ctx context.Context) ([]model.Servico, error) {
	var out []model.Servico
	for _, s := range r.servicos {
		if !s.Ativo {
			continue
		}
		cp := *s
		if sub, err := r.subprocessos.ObterPorID(ctx, s.SubprocessoID); err == nil {
			cp.Subprocesso = sub
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubServicoRepo) Atualizar(_ context.Context, s *model.Servico) error {
	r.servicos[s.ID] = s
	return nil
}

func (r *stubServicoRepo) AtualizarTx(_ *gorm.DB, s *model.Servico) error {
	r.servicos[s.ID] = s
	return nil
}

func (r *stubServicoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if s, ok := r.servicos[id]; ok {
		s.Ativo = false
	}
	return nil
}

func (r *stubServicoRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if s, ok := r.servicos[id]; ok {
		s.Ativo = true
	}
	return nil
}

func (r *stubServicoRepo) CriarHistoricoTx(_ *gorm.DB, h *model.ServicoHistorico) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.historico = append(r.historico, *h)
	return nil
}

func (r *stubServicoRepo) ListarHistorico(_ context.Context, servicoID uuid.UUID) ([]model.ServicoHistorico, error) {
	var out []model.ServicoHistorico
	for _, h := range r.historico {
		if h.ServicoID == servicoID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Versao > out[j].Versao })
	return out, nil
}

func (r *stubServicoRepo) DB() *gorm.DB { return nil }

var _ repository.ServicoRepository = (*stubServicoRepo)(nil)

// ── Sugestoes ─────────────────────────────────────────────────────────────────

type stubSugestaoRepo struct {
	sugestoes map[uuid.UUID]*model.Sugestao
	ordem     []uuid.UUID
}

func newStubSugestaoRepo() *stubSugestaoRepo {
	return &stubSugestaoRepo{sugestoes: make(map[uuid.UUID]*model.Sugestao)}
}

func (r *stubSugestaoRepo) Criar(_ context.Context, s *model.Sugestao) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sugestoes[s.ID] = s
	r.ordem = append(r.ordem, s.ID)
	return nil
}

func (r *stubSugestaoRepo) ObterPorID(_ context.Context, id uuid.UUID) (*model.Sugestao, error) {
	s, ok := r.sugestoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSugestaoRepo) Listar(_ context.Context, status string) ([]model.Sugestao, error) {
	var out []model.Sugestao
	for i := len(r.ordem) - 1; i >= 0; i-- {
		s := r.sugestoes[r.ordem[i]]
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSugestaoRepo) ListarPorCriador(_ context.Context, criadoPor uuid.UUID) ([]model.Sugestao, error) {
	var out []model.Sugestao
	for i := len(r.ordem) - 1; i >= 0; i-- {
		s := r.sugestoes[r.ordem[i]]
		if s.CriadoPor == criadoPor {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSugestaoRepo) AtualizarTx(_ *gorm.DB, s *model.Sugestao) error {
	r.sugestoes[s.ID] = s
	return nil
}

func (r *stubSugestaoRepo) DB() *gorm.DB { return nil }

var _ repository.SugestaoRepository = (*stubSugestaoRepo)(nil)

// ── Anexos ────────────────────────────────────────────────────────────────────

type stubAnexoRepo struct {
	anexos map[uuid.UUID]*model.Anexo
}

func newStubAnexoRepo() *stubAnexoRepo {
	return &stubAnexoRepo{anexos: make(map[uuid.UUID]*model.Anexo)}
}

func (r *stubAnexoRepo) Criar(_ context.Context, a *model.Anexo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.anexos[a.ID] = a
	return nil
}

func (r *stubAnexoRepo) ObterPorID(_ context.Context, id uuid.UUID) (*model.Anexo, error) {
	a, ok := r.anexos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubAnexoRepo) ListarPorServico(_ context.Context, servicoID uuid.UUID) ([]model.Anexo, error) {
	var out []model.Anexo
	for _, a := range r.anexos {
		if a.Ativo && a.ServicoID != nil && *a.ServicoID == servicoID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAnexoRepo) ListarPorSugestao(_ context.Context, sugestaoID uuid.UUID) ([]model.Anexo, error) {
	var out []model.Anexo
	for _, a := range r.anexos {
		if a.Ativo && a.SugestaoID != nil && *a.SugestaoID == sugestaoID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAnexoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if a, ok := r.anexos[id]; ok {
		a.Ativo = false
	}
	return nil
}

var _ repository.AnexoRepository = (*stubAnexoRepo)(nil)

// ── Profiles ──────────────────────────────────────────────────────────────────

type stubProfileRepo struct {
	profiles map[uuid.UUID]*model.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uuid.UUID]*model.Profile)}
}

func (r *stubProfileRepo) Criar(_ context.Context, p *model.Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.profiles[p.ID] = p
	return nil
}

func (r *stubProfileRepo) ObterPorID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProfileRepo) ObterPorEmail(_ context.Context, email string) (*model.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProfileRepo) ListarAtivos(_ context.Context) ([]model.Profile, error) {
	var out []model.Profile
	for _, p := range r.profiles {
		if p.Ativo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProfileRepo) ListarTodos(_ context.Context) ([]model.Profile, error) {
	var out []model.Profile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProfileRepo) Atualizar(_ context.Context, p *model.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *stubProfileRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.profiles[id]; ok {
		p.Ativo = false
	}
	return nil
}

func (r *stubProfileRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.profiles[id]; ok {
		p.Ativo = true
	}
	return nil
}

var _ repository.ProfileRepository = (*stubProfileRepo)(nil)

// ── Configuracoes ─────────────────────────────────────────────────────────────

type stubConfiguracaoRepo struct {
	cfg *model.Configuracao
}

func newStubConfiguracaoRepo() *stubConfiguracaoRepo {
	return &stubConfiguracaoRepo{cfg: &model.Configuracao{
		ID:               uuid.New(),
		NomePortal:       "Catálogo de Serviços",
		SugestoesAbertas: true,
	}}
}

func (r *stubConfiguracaoRepo) Obter(_ context.Context) (*model.Configuracao, error) {
	cp := *r.cfg
	return &cp, nil
}

func (r *stubConfiguracaoRepo) Atualizar(_ context.Context, c *model.Configuracao) error {
	r.cfg = c
	return nil
}

var _ repository.ConfiguracaoRepository = (*stubConfiguracaoRepo)(nil)
