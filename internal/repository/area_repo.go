package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AreaRepository defines CRUD operations for Area.
type AreaRepository interface {
	Criar(ctx context.Context, a *model.Area) error
	CriarTx(tx *gorm.DB, a *model.Area) error
	ListarAtivas(ctx context.Context) ([]model.Area, error)
	ListarTodas(ctx context.Context) ([]model.Area, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Area, error)
	ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Area, error)
	ObterPorNome(ctx context.Context, nome string) (*model.Area, error)
	Atualizar(ctx context.Context, a *model.Area) error
	AtualizarTx(tx *gorm.DB, a *model.Area) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type areaRepository struct{ db *gorm.DB }

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) Criar(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *areaRepository) CriarTx(tx *gorm.DB, a *model.Area) error {
	return tx.Create(a).Error
}

func (r *areaRepository) ListarAtivas(ctx context.Context) ([]model.Area, error) {
	var list []model.Area
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome asc").Find(&list).Error
	return list, err
}

func (r *areaRepository) ListarTodas(ctx context.Context) ([]model.Area, error) {
	var list []model.Area
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *areaRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *areaRepository) ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Area, error) {
	var a model.Area
	if err := tx.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *areaRepository) ObterPorNome(ctx context.Context, nome string) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).Where("lower(nome) = lower(?)", nome).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *areaRepository) Atualizar(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *areaRepository) AtualizarTx(tx *gorm.DB, a *model.Area) error {
	return tx.Save(a).Error
}

func (r *areaRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Area{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *areaRepository) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Area{}).Where("id = ?", id).Update("ativo", true).Error
}
