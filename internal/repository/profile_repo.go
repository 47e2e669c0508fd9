package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository defines the data access contract for portal users.
type ProfileRepository interface {
	Criar(ctx context.Context, p *model.Profile) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	ObterPorEmail(ctx context.Context, email string) (*model.Profile, error)
	ListarAtivos(ctx context.Context) ([]model.Profile, error)
	ListarTodos(ctx context.Context) ([]model.Profile, error)
	Atualizar(ctx context.Context, p *model.Profile) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Criar(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) ObterPorEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) ListarAtivos(ctx context.Context) ([]model.Profile, error) {
	var list []model.Profile
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome asc").Find(&list).Error
	return list, err
}

func (r *profileRepository) ListarTodos(ctx context.Context) ([]model.Profile, error) {
	var list []model.Profile
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *profileRepository) Atualizar(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *profileRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *profileRepository) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Update("ativo", true).Error
}
