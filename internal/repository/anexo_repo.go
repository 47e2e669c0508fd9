package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnexoRepository defines the data access contract for attachments.
type AnexoRepository interface {
	Criar(ctx context.Context, a *model.Anexo) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Anexo, error)
	ListarPorServico(ctx context.Context, servicoID uuid.UUID) ([]model.Anexo, error)
	ListarPorSugestao(ctx context.Context, sugestaoID uuid.UUID) ([]model.Anexo, error)
	Desativar(ctx context.Context, id uuid.UUID) error
}

type anexoRepository struct{ db *gorm.DB }

func NewAnexoRepository(db *gorm.DB) AnexoRepository {
	return &anexoRepository{db: db}
}

func (r *anexoRepository) Criar(ctx context.Context, a *model.Anexo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *anexoRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Anexo, error) {
	var a model.Anexo
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *anexoRepository) ListarPorServico(ctx context.Context, servicoID uuid.UUID) ([]model.Anexo, error) {
	var list []model.Anexo
	err := r.db.WithContext(ctx).
		Where("servico_id = ? AND ativo = true", servicoID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *anexoRepository) ListarPorSugestao(ctx context.Context, sugestaoID uuid.UUID) ([]model.Anexo, error) {
	var list []model.Anexo
	err := r.db.WithContext(ctx).
		Where("sugestao_id = ? AND ativo = true", sugestaoID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *anexoRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Anexo{}).Where("id = ?", id).Update("ativo", false).Error
}
