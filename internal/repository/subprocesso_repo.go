package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubprocessoRepository defines CRUD operations for Subprocesso.
type SubprocessoRepository interface {
	Criar(ctx context.Context, s *model.Subprocesso) error
	CriarTx(tx *gorm.DB, s *model.Subprocesso) error
	ListarAtivosPorProcesso(ctx context.Context, processoID uuid.UUID) ([]model.Subprocesso, error)
	// Listar returns active subprocessos, optionally restricted to one
	// processo, with Processo and Processo.Area preloaded.
	Listar(ctx context.Context, processoID *uuid.UUID) ([]model.Subprocesso, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Subprocesso, error)
	ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Subprocesso, error)
	Atualizar(ctx context.Context, s *model.Subprocesso) error
	AtualizarTx(tx *gorm.DB, s *model.Subprocesso) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type subprocessoRepository struct{ db *gorm.DB }

func NewSubprocessoRepository(db *gorm.DB) SubprocessoRepository {
	return &subprocessoRepository{db: db}
}

func (r *subprocessoRepository) Criar(ctx context.Context, s *model.Subprocesso) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subprocessoRepository) CriarTx(tx *gorm.DB, s *model.Subprocesso) error {
	return tx.Create(s).Error
}

func (r *subprocessoRepository) ListarAtivosPorProcesso(ctx context.Context, processoID uuid.UUID) ([]model.Subprocesso, error) {
	var list []model.Subprocesso
	err := r.db.WithContext(ctx).
		Where("processo_id = ? AND ativo = true", processoID).
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *subprocessoRepository) Listar(ctx context.Context, processoID *uuid.UUID) ([]model.Subprocesso, error) {
	var list []model.Subprocesso
	q := r.db.WithContext(ctx).Preload("Processo").Preload("Processo.Area").Where("ativo = true")
	if processoID != nil {
		q = q.Where("processo_id = ?", *processoID)
	}
	err := q.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *subprocessoRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Subprocesso, error) {
	var s model.Subprocesso
	err := r.db.WithContext(ctx).Preload("Processo").Preload("Processo.Area").First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subprocessoRepository) ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Subprocesso, error) {
	var s model.Subprocesso
	if err := tx.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subprocessoRepository) Atualizar(ctx context.Context, s *model.Subprocesso) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *subprocessoRepository) AtualizarTx(tx *gorm.DB, s *model.Subprocesso) error {
	return tx.Save(s).Error
}

func (r *subprocessoRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Subprocesso{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *subprocessoRepository) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Subprocesso{}).Where("id = ?", id).Update("ativo", true).Error
}
