package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Aggregated tree ─────────────────────────────────────────────────────────

// AreaArvore is one node of the aggregated Area → Processo → Subprocesso →
// Servico tree served to browsing pages. QuantidadeServicos at each level is
// the sum over its descendants.
type AreaArvore struct {
	ID                 uuid.UUID        `json:"id"`
	Nome               string           `json:"nome"`
	Icone              *string          `json:"icone,omitempty"`
	Descricao          *string          `json:"descricao,omitempty"`
	QuantidadeServicos int              `json:"quantidade_servicos"`
	Processos          []ProcessoArvore `json:"processos"`
}

type ProcessoArvore struct {
	ID                 uuid.UUID           `json:"id"`
	Nome               string              `json:"nome"`
	Descricao          *string             `json:"descricao,omitempty"`
	QuantidadeServicos int                 `json:"quantidade_servicos"`
	Subprocessos       []SubprocessoArvore `json:"subprocessos"`
}

type SubprocessoArvore struct {
	ID                 uuid.UUID             `json:"id"`
	Nome               string                `json:"nome"`
	Descricao          *string               `json:"descricao,omitempty"`
	QuantidadeServicos int                   `json:"quantidade_servicos"`
	Servicos           []ServicoCatalogoItem `json:"servicos"`
}

// ServicoCatalogoItem is the flat catalog row with denormalized ancestor
// names, used by the filter/search layer and list pages.
type ServicoCatalogoItem struct {
	ID            uuid.UUID        `json:"id"`
	Nome          string           `json:"nome"`
	Area          string           `json:"area"`
	Processo      string           `json:"processo"`
	Subprocesso   string           `json:"subprocesso"`
	DemandaRotina string           `json:"demanda_rotina"`
	Status        string           `json:"status"`
	SLA           *decimal.Decimal `json:"sla,omitempty"`
	TempoMedio    *decimal.Decimal `json:"tempo_medio,omitempty"`
}

// ─── Flat parent-scoped lists ────────────────────────────────────────────────

type ProcessoListItem struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Descricao *string   `json:"descricao,omitempty"`
	AreaID    uuid.UUID `json:"area_id"`
	AreaNome  string    `json:"area_nome"`
}

type SubprocessoListItem struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    *string   `json:"descricao,omitempty"`
	ProcessoID   uuid.UUID `json:"processo_id"`
	ProcessoNome string    `json:"processo_nome"`
	AreaID       uuid.UUID `json:"area_id"`
	AreaNome     string    `json:"area_nome"`
}

// ─── Filter state ────────────────────────────────────────────────────────────

// FiltroEstado mirrors the catalog page filter controls. Empty slices /
// strings mean "no restriction"; DemandaRotina "todos" matches anything.
type FiltroEstado struct {
	Areas         []string `json:"areas"         form:"areas"`
	Processos     []string `json:"processos"     form:"processos"`
	Subprocessos  []string `json:"subprocessos"  form:"subprocessos"`
	Produto       string   `json:"produto"       form:"produto"`
	DemandaRotina string   `json:"demanda_rotina" form:"demanda_rotina"`
	Status        []string `json:"status"        form:"status"`
}
