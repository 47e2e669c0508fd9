package service

// anexo_service.go — attachment uploads linked to either a catalog entry or
// a suggestion (exactly one). Limits are enforced here in code: 10MB default
// cap and an extension whitelist, independent of any proxy in front.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/infra"
	"catalogoservicos/internal/model"
	"catalogoservicos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var extensoesPermitidas = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".jpg": true, ".jpeg": true, ".png": true, ".zip": true,
}

type AnexoService interface {
	Upload(ctx context.Context, criadoPor uuid.UUID, servicoID, sugestaoID *uuid.UUID, header *multipart.FileHeader) (*dto.AnexoResponse, error)
	ListarPorServico(ctx context.Context, servicoID uuid.UUID) ([]dto.AnexoResponse, error)
	ListarPorSugestao(ctx context.Context, sugestaoID uuid.UUID) ([]dto.AnexoResponse, error)
	// CaminhoArquivo resolves an attachment to its on-disk path for download.
	CaminhoArquivo(ctx context.Context, id uuid.UUID) (string, string, error)
	Remover(ctx context.Context, adminID, id uuid.UUID) error
}

type anexoService struct {
	repo      repository.AnexoRepository
	servicos  repository.ServicoRepository
	sugestoes repository.SugestaoRepository
	storage   *infra.FileStorage
	maxBytes  int64
	auditor   *Auditor
}

func NewAnexoService(repo repository.AnexoRepository, servicos repository.ServicoRepository, sugestoes repository.SugestaoRepository, storage *infra.FileStorage, maxBytes int64, auditor *Auditor) AnexoService {
	return &anexoService{repo: repo, servicos: servicos, sugestoes: sugestoes, storage: storage, maxBytes: maxBytes, auditor: auditor}
}

func (s *anexoService) Upload(ctx context.Context, criadoPor uuid.UUID, servicoID, sugestaoID *uuid.UUID, header *multipart.FileHeader) (*dto.AnexoResponse, error) {
	if (servicoID == nil) == (sugestaoID == nil) {
		return nil, novaValidacao("vinculo", "informe exatamente um de servico_id ou sugestao_id")
	}
	if header.Size > s.maxBytes {
		return nil, novaValidacao("arquivo", fmt.Sprintf("tamanho excede o limite de %d bytes", s.maxBytes))
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensoesPermitidas[ext] {
		return nil, novaValidacao("arquivo", fmt.Sprintf("extensão %q não permitida", ext))
	}
	if servicoID != nil {
		if sv, err := s.servicos.ObterPorID(ctx, *servicoID); err != nil || !sv.Ativo {
			return nil, &NaoEncontradoError{Entidade: "Serviço"}
		}
	}
	if sugestaoID != nil {
		sug, err := s.sugestoes.ObterPorID(ctx, *sugestaoID)
		if err != nil {
			return nil, &NaoEncontradoError{Entidade: "Sugestão"}
		}
		// only the creator attaches, and only while the suggestion is open
		if sug.CriadoPor != criadoPor {
			return nil, ErrPermissaoNegada
		}
		if sug.Status != dto.StatusPendente {
			return nil, ErrSugestaoJaResolvida
		}
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir upload: %w", err)
	}
	defer src.Close()

	anexoID := uuid.New()
	// LimitReader backs the declared size: never write past the cap even if
	// the multipart header lies.
	stored, err := s.storage.Save(anexoID, header.Filename, io.LimitReader(src, s.maxBytes))
	if err != nil {
		return nil, err
	}

	a := model.Anexo{
		ID:          anexoID,
		NomeArquivo: header.Filename,
		URL:         stored,
		MimeType:    header.Header.Get("Content-Type"),
		Tamanho:     header.Size,
		ServicoID:   servicoID,
		SugestaoID:  sugestaoID,
		CriadoPor:   criadoPor,
		Ativo:       true,
	}
	if err := s.repo.Criar(ctx, &a); err != nil {
		// best-effort cleanup of the orphaned file
		_ = s.storage.Remove(stored)
		return nil, err
	}

	s.auditor.registrar(ctx, "anexo_criado", "anexo", a.ID, criadoPor, nil)
	return montarAnexoResponse(a), nil
}

func (s *anexoService) ListarPorServico(ctx context.Context, servicoID uuid.UUID) ([]dto.AnexoResponse, error) {
	list, err := s.repo.ListarPorServico(ctx, servicoID)
	if err != nil {
		return nil, err
	}
	return montarAnexoResponses(list), nil
}

func (s *anexoService) ListarPorSugestao(ctx context.Context, sugestaoID uuid.UUID) ([]dto.AnexoResponse, error) {
	list, err := s.repo.ListarPorSugestao(ctx, sugestaoID)
	if err != nil {
		return nil, err
	}
	return montarAnexoResponses(list), nil
}

func (s *anexoService) CaminhoArquivo(ctx context.Context, id uuid.UUID) (string, string, error) {
	a, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", &NaoEncontradoError{Entidade: "Anexo"}
	}
	if err != nil {
		return "", "", err
	}
	if !a.Ativo {
		return "", "", &NaoEncontradoError{Entidade: "Anexo"}
	}
	return s.storage.Path(a.URL), a.NomeArquivo, nil
}

func (s *anexoService) Remover(ctx context.Context, adminID, id uuid.UUID) error {
	a, err := s.repo.ObterPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NaoEncontradoError{Entidade: "Anexo"}
	}
	if err != nil {
		return err
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	_ = s.storage.Remove(a.URL)
	s.auditor.registrar(ctx, "anexo_removido", "anexo", id, adminID, nil)
	return nil
}

func montarAnexoResponse(a model.Anexo) *dto.AnexoResponse {
	return &dto.AnexoResponse{
		ID:          a.ID,
		NomeArquivo: a.NomeArquivo,
		URL:         a.URL,
		MimeType:    a.MimeType,
		Tamanho:     a.Tamanho,
		ServicoID:   a.ServicoID,
		SugestaoID:  a.SugestaoID,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func montarAnexoResponses(list []model.Anexo) []dto.AnexoResponse {
	out := make([]dto.AnexoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *montarAnexoResponse(a))
	}
	return out
}
