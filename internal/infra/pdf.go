package infra

// pdf.go — "ficha do serviço" generation using go-pdf/fpdf.
// Produces an A4 one-pager with the service identification, hierarchy path,
// descriptive fields and SLA/SLI metadata, for printing or sharing.

import (
	"bytes"
	"fmt"

	"catalogoservicos/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GerarFichaServico renders the service detail sheet and returns the PDF bytes.
func GerarFichaServico(s *dto.ServicoResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Ficha do Serviço", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%s  >  %s  >  %s", s.Area, s.Processo, s.Subprocesso), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Identification ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, s.Nome, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Versão %d — atualizado em %s", s.Versao, s.UpdatedAt), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeSection := func(title string, value *string) {
		if value == nil || *value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, *value, "", "L", false)
		pdf.Ln(2)
	}

	writeSection("O que é", s.OQueE)
	writeSection("Quem pode utilizar", s.QuemPodeUtilizar)
	writeSection("Requisitos operacionais", s.RequisitosOperacionais)
	writeSection("Observações", s.Observacoes)

	// ── Metadata table ────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Indicadores", "B", 1, "L", false, 0, "")

	col1 := contentW * 0.4
	col2 := contentW * 0.6
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(col2, 6, value, "", 1, "L", false, 0, "")
	}

	if s.TempoMedio != nil {
		unidade := ""
		if s.TempoMedioUnidade != nil {
			unidade = " " + *s.TempoMedioUnidade
		}
		row("Tempo médio de atendimento", s.TempoMedio.String()+unidade)
	}
	if s.SLA != nil {
		row("SLA", s.SLA.String())
	}
	if s.SLI != nil {
		row("SLI", s.SLI.String())
	}
	if s.Ano != nil {
		row("Ano de referência", fmt.Sprintf("%d", *s.Ano))
	}
	row("Tipo de atendimento", s.DemandaRotina)
	row("Status", s.Status)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render ficha: %w", err)
	}
	return buf.Bytes(), nil
}
