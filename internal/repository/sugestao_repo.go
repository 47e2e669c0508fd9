package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SugestaoRepository defines the data access contract for suggestions.
type SugestaoRepository interface {
	Criar(ctx context.Context, s *model.Sugestao) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Sugestao, error)
	// Listar returns suggestions newest-first, optionally restricted by status.
	Listar(ctx context.Context, status string) ([]model.Sugestao, error)
	ListarPorCriador(ctx context.Context, criadoPor uuid.UUID) ([]model.Sugestao, error)
	AtualizarTx(tx *gorm.DB, s *model.Sugestao) error

	// DB exposes the underlying *gorm.DB so the service can run the
	// apply-and-resolve transaction.
	DB() *gorm.DB
}

type sugestaoRepository struct{ db *gorm.DB }

func NewSugestaoRepository(db *gorm.DB) SugestaoRepository {
	return &sugestaoRepository{db: db}
}

func (r *sugestaoRepository) Criar(ctx context.Context, s *model.Sugestao) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sugestaoRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Sugestao, error) {
	var s model.Sugestao
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sugestaoRepository) Listar(ctx context.Context, status string) ([]model.Sugestao, error) {
	var list []model.Sugestao
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *sugestaoRepository) ListarPorCriador(ctx context.Context, criadoPor uuid.UUID) ([]model.Sugestao, error) {
	var list []model.Sugestao
	err := r.db.WithContext(ctx).
		Where("criado_por = ?", criadoPor).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *sugestaoRepository) AtualizarTx(tx *gorm.DB, s *model.Sugestao) error {
	return tx.Save(s).Error
}

func (r *sugestaoRepository) DB() *gorm.DB { return r.db }
