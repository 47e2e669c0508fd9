package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessoRepository defines CRUD operations for Processo.
type ProcessoRepository interface {
	Criar(ctx context.Context, p *model.Processo) error
	CriarTx(tx *gorm.DB, p *model.Processo) error
	ListarAtivosPorArea(ctx context.Context, areaID uuid.UUID) ([]model.Processo, error)
	// Listar returns active processos, optionally restricted to one area,
	// with the parent Area preloaded for display names.
	Listar(ctx context.Context, areaID *uuid.UUID) ([]model.Processo, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Processo, error)
	ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Processo, error)
	Atualizar(ctx context.Context, p *model.Processo) error
	AtualizarTx(tx *gorm.DB, p *model.Processo) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type processoRepository struct{ db *gorm.DB }

func NewProcessoRepository(db *gorm.DB) ProcessoRepository {
	return &processoRepository{db: db}
}

func (r *processoRepository) Criar(ctx context.Context, p *model.Processo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *processoRepository) CriarTx(tx *gorm.DB, p *model.Processo) error {
	return tx.Create(p).Error
}

func (r *processoRepository) ListarAtivosPorArea(ctx context.Context, areaID uuid.UUID) ([]model.Processo, error) {
	var list []model.Processo
	err := r.db.WithContext(ctx).
		Where("area_id = ? AND ativo = true", areaID).
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *processoRepository) Listar(ctx context.Context, areaID *uuid.UUID) ([]model.Processo, error) {
	var list []model.Processo
	q := r.db.WithContext(ctx).Preload("Area").Where("ativo = true")
	if areaID != nil {
		q = q.Where("area_id = ?", *areaID)
	}
	err := q.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *processoRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Processo, error) {
	var p model.Processo
	err := r.db.WithContext(ctx).Preload("Area").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *processoRepository) ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Processo, error) {
	var p model.Processo
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *processoRepository) Atualizar(ctx context.Context, p *model.Processo) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *processoRepository) AtualizarTx(tx *gorm.DB, p *model.Processo) error {
	return tx.Save(p).Error
}

func (r *processoRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Processo{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *processoRepository) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Processo{}).Where("id = ?", id).Update("ativo", true).Error
}
