package service

// filtro.go — pure narrowing of the aggregated catalog. No persistence, no
// network: deterministic functions over (itens, estado) pairs, applied the
// same way by the catalog endpoint and unit tests.

import (
	"strings"

	"catalogoservicos/internal/dto"
)

// DemandaRotinaTodos disables the demand-type predicate.
const DemandaRotinaTodos = "todos"

func contem(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// FiltrarServicos applies every active predicate of f with logical AND:
// area/processo/subprocesso set membership, case-insensitive substring on
// the product name, exact demand-type unless "todos", and status membership.
func FiltrarServicos(itens []dto.ServicoCatalogoItem, f dto.FiltroEstado) []dto.ServicoCatalogoItem {
	produto := strings.ToLower(strings.TrimSpace(f.Produto))

	out := make([]dto.ServicoCatalogoItem, 0, len(itens))
	for _, item := range itens {
		if len(f.Areas) > 0 && !contem(f.Areas, item.Area) {
			continue
		}
		if len(f.Processos) > 0 && !contem(f.Processos, item.Processo) {
			continue
		}
		if len(f.Subprocessos) > 0 && !contem(f.Subprocessos, item.Subprocesso) {
			continue
		}
		if produto != "" && !strings.Contains(strings.ToLower(item.Nome), produto) {
			continue
		}
		if f.DemandaRotina != "" && f.DemandaRotina != DemandaRotinaTodos && item.DemandaRotina != f.DemandaRotina {
			continue
		}
		if len(f.Status) > 0 && !contem(f.Status, strings.ToLower(strings.TrimSpace(item.Status))) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// AplicarCascata drops selections orphaned by a parent deselection: a
// selected processo whose area is no longer selected is removed, and the
// same applies one level down for subprocessos. With no area selection every
// processo survives (and likewise for subprocessos with no processo
// selection) — an empty set means "no restriction", not "nothing".
func AplicarCascata(arvore []dto.AreaArvore, f dto.FiltroEstado) dto.FiltroEstado {
	processosValidos := make(map[string]bool)
	subprocessosValidos := make(map[string]bool)

	for _, area := range arvore {
		areaOK := len(f.Areas) == 0 || contem(f.Areas, area.Nome)
		for _, proc := range area.Processos {
			if areaOK {
				processosValidos[proc.Nome] = true
			}
			procOK := areaOK && (len(f.Processos) == 0 || contem(f.Processos, proc.Nome))
			for _, sub := range proc.Subprocessos {
				if procOK {
					subprocessosValidos[sub.Nome] = true
				}
			}
		}
	}

	limpo := f
	limpo.Processos = nil
	for _, p := range f.Processos {
		if processosValidos[p] {
			limpo.Processos = append(limpo.Processos, p)
		}
	}
	limpo.Subprocessos = nil
	for _, s := range f.Subprocessos {
		if subprocessosValidos[s] {
			limpo.Subprocessos = append(limpo.Subprocessos, s)
		}
	}
	return limpo
}

// ProcessosCandidatos lists the processo names selectable under the current
// area selection, in tree order.
func ProcessosCandidatos(arvore []dto.AreaArvore, f dto.FiltroEstado) []string {
	var out []string
	for _, area := range arvore {
		if len(f.Areas) > 0 && !contem(f.Areas, area.Nome) {
			continue
		}
		for _, proc := range area.Processos {
			out = append(out, proc.Nome)
		}
	}
	return out
}

// SubprocessosCandidatos lists the subprocesso names selectable under the
// current area + processo selection, in tree order.
func SubprocessosCandidatos(arvore []dto.AreaArvore, f dto.FiltroEstado) []string {
	var out []string
	for _, area := range arvore {
		if len(f.Areas) > 0 && !contem(f.Areas, area.Nome) {
			continue
		}
		for _, proc := range area.Processos {
			if len(f.Processos) > 0 && !contem(f.Processos, proc.Nome) {
				continue
			}
			for _, sub := range proc.Subprocessos {
				out = append(out, sub.Nome)
			}
		}
	}
	return out
}
